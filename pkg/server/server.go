package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/roguetea/arkdex/internal/logger"
	"github.com/roguetea/arkdex/pkg/config"
	"github.com/roguetea/arkdex/pkg/gamedata"
	"github.com/roguetea/arkdex/pkg/recruit"
	"github.com/roguetea/arkdex/pkg/render"
	"github.com/roguetea/arkdex/pkg/resolve"
)

// Server handles the IPC for game-data lookups
type Server struct {
	cache    *gamedata.Cache
	resolver *resolve.Resolver
	cfg      *config.Config
	logger   *log.Logger
	decoder  *msgpack.Decoder
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
}

// NewServer creates a lookup server using stdin/stdout for IPC.
func NewServer(cache *gamedata.Cache, resolver *resolve.Resolver, cfg *config.Config) *Server {
	return NewServerIO(cache, resolver, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a lookup server over the given streams, which lets
// tests drive it with buffers.
func NewServerIO(cache *gamedata.Cache, resolver *resolve.Resolver, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		cache:    cache,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger.New("ipc"),
		decoder:  msgpack.NewDecoder(bufio.NewReader(r)),
		writer:   bw,
		encoder:  msgpack.NewEncoder(bw),
	}
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the stream.
func (s *Server) Start() error {
	s.logger.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request LookupRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request to its command handler.
func (s *Server) handleRequest(request LookupRequest) {
	switch request.Cmd {
	case "operator", "skins", "skills", "stage", "item", "furniture", "enemy":
		s.handleQuery(request)
	case "recruit", "combos":
		s.handleRecruit(request)
	case "tip":
		s.handleTip(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleQuery serves the free-text lookup commands.
func (s *Server) handleQuery(request LookupRequest) {
	if len(request.Query) > s.cfg.Server.MaxQueryLen {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQueryLen), 400)
		s.logger.Debug("Query is too long in request")
		return
	}

	start := time.Now()
	msgs, err := s.lookup(request.Cmd, request.Query)
	if err != nil {
		s.sendLookupError(request.ID, err)
		return
	}
	s.sendMessages(request.ID, msgs, time.Since(start))
}

// lookup resolves a query and renders it for one command.
func (s *Server) lookup(cmd, query string) ([]render.Message, error) {
	switch cmd {
	case "operator":
		op, err := s.resolver.Operator(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Operator(op)}, nil
	case "skins":
		op, skins, err := s.resolver.OperatorSkins(query)
		if err != nil {
			return nil, err
		}
		return render.Skins(op, skins), nil
	case "skills":
		op, skills, err := s.resolver.OperatorSkills(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Skills(op, skills)}, nil
	case "stage":
		stage, challenge, err := s.resolver.Stage(query)
		if err != nil {
			return nil, err
		}
		msg, err := render.Stage(s.cache, stage, challenge)
		if err != nil {
			return nil, err
		}
		return []render.Message{msg}, nil
	case "item":
		item, err := s.resolver.Item(query)
		if err != nil {
			return nil, err
		}
		drops, err := s.resolver.FarmableStages(item.ItemID)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Item(item, drops)}, nil
	case "furniture":
		f, err := s.resolver.Furniture(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Furniture(f)}, nil
	case "enemy":
		e, err := s.resolver.Enemy(query)
		if err != nil {
			return nil, err
		}
		return []render.Message{render.Enemy(e)}, nil
	}
	return nil, fmt.Errorf("unknown command: %s", cmd)
}

// handleRecruit serves the tag search commands.
func (s *Server) handleRecruit(request LookupRequest) {
	start := time.Now()
	switch request.Cmd {
	case "recruit":
		matches, err := recruit.Search(s.cache, request.Tags)
		if err != nil {
			s.sendLookupError(request.ID, err)
			return
		}
		msgs := []render.Message{render.RecruitMatches(request.Tags, matches)}
		s.sendMessages(request.ID, msgs, time.Since(start))
	case "combos":
		combos, err := recruit.Combinations(s.cache, request.Tags)
		if err != nil {
			s.sendLookupError(request.ID, err)
			return
		}
		s.sendMessages(request.ID, render.Combos(combos), time.Since(start))
	}
}

// handleTip serves a random loading-screen tip.
func (s *Server) handleTip(request LookupRequest) {
	start := time.Now()
	tip, err := s.resolver.Tip(request.Category)
	if err != nil {
		s.sendLookupError(request.ID, err)
		return
	}
	s.sendMessages(request.ID, []render.Message{render.Tip(tip)}, time.Since(start))
}

// sendMessages caps the batch at the configured limit and writes the
// response.
func (s *Server) sendMessages(id string, msgs []render.Message, elapsed time.Duration) {
	if max := s.cfg.Server.MaxMessages; max > 0 && len(msgs) > max {
		s.logger.Debugf("Truncating response from %d to %d messages", len(msgs), max)
		msgs = msgs[:max]
	}
	s.send(LookupResponse{
		ID:        id,
		Messages:  msgs,
		Count:     len(msgs),
		TimeTaken: elapsed.Milliseconds(),
	})
}

// sendLookupError maps a lookup failure onto the wire error codes. Internal
// failures keep their detail in the log, not on the wire.
func (s *Server) sendLookupError(id string, err error) {
	switch code := errorCode(err); code {
	case 400, 404:
		s.sendError(id, err.Error(), code)
	case 503:
		s.logger.Errorf("Game data unavailable: %v", err)
		s.sendError(id, "Game data unavailable", code)
	default:
		s.logger.Errorf("Lookup failed: %v", err)
		s.sendError(id, "Internal server error", code)
	}
}

// errorCode classifies lookup errors into wire status codes.
func errorCode(err error) int {
	switch {
	case errors.Is(err, resolve.ErrMissingQuery),
		errors.Is(err, resolve.ErrInvalidCategory),
		errors.Is(err, recruit.ErrMissingTags),
		errors.Is(err, recruit.ErrInvalidTag):
		return 400
	case errors.Is(err, resolve.ErrNoResult),
		errors.Is(err, recruit.ErrNoMatch):
		return 404
	case errors.Is(err, gamedata.ErrUnavailable):
		return 503
	}
	return 500
}

// send encodes one response and flushes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		s.logger.Errorf("Flushing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(LookupError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
