package gamedata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// HiddenOperators returns the name->hidden map from the remote recruitment
// dataset. The map is cached after the first successful fetch. A failed fetch
// is logged and yields an empty map so tag queries keep working with "no
// hidden flags known"; the failure is not cached, the next call fetches
// again.
func (c *Cache) HiddenOperators() (map[string]bool, error) {
	c.hiddenMu.Lock()
	defer c.hiddenMu.Unlock()

	if c.hidden != nil {
		return c.hidden, nil
	}

	c.hiddenLoads.Add(1)
	entries, err := c.fetchRecruit()
	if err != nil {
		log.Warnf("Recruit dataset fetch failed, continuing without hidden flags: %v", err)
		return map[string]bool{}, nil
	}

	hidden := make(map[string]bool, len(entries))
	for _, e := range entries {
		hidden[e.Name] = e.Hidden
	}
	c.hidden = hidden
	log.Debugf("Fetched %d recruit entries, %d hidden", len(entries), countHidden(hidden))
	return hidden, nil
}

func (c *Cache) fetchRecruit() ([]RecruitEntry, error) {
	resp, err := c.client.Get(c.recruitURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", c.recruitURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: status %d", c.recruitURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading recruit dataset: %w", err)
	}

	var entries []RecruitEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing recruit dataset: %w", err)
	}
	return entries, nil
}

func countHidden(m map[string]bool) int {
	n := 0
	for _, h := range m {
		if h {
			n++
		}
	}
	return n
}
