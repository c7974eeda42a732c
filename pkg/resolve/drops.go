package resolve

import (
	"fmt"
	"strings"

	"github.com/roguetea/arkdex/pkg/gamedata"
)

// StageDrop pairs a stage with the drop type code an item carries in that
// stage's detailed reward list.
type StageDrop struct {
	Stage    *gamedata.Stage
	DropType int
}

// StagesWithItem scans the stage table for stages whose detailed reward list
// contains the exact item id, returning each stage with the entry's drop
// type. The scan runs in stage-key order, so results are deterministic. No
// per-item index is kept; the table is small enough that a linear pass per
// query is the right trade.
func (r *Resolver) StagesWithItem(itemID string) ([]StageDrop, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("%w: provide an item id", ErrMissingQuery)
	}
	stages, err := r.cache.Stages()
	if err != nil {
		return nil, err
	}
	var drops []StageDrop
	for _, stage := range stages {
		for _, reward := range stage.StageDropInfo.DisplayDetailRewards {
			if reward.ID == itemID {
				drops = append(drops, StageDrop{Stage: stage, DropType: reward.DropType})
				break
			}
		}
	}
	return drops, nil
}

// FarmableStages is StagesWithItem minus chance drops, the usual "where do I
// farm this" answer.
func (r *Resolver) FarmableStages(itemID string) ([]StageDrop, error) {
	drops, err := r.StagesWithItem(itemID)
	if err != nil {
		return nil, err
	}
	farmable := drops[:0:0]
	for _, d := range drops {
		if d.DropType != gamedata.DropChance {
			farmable = append(farmable, d)
		}
	}
	return farmable, nil
}
