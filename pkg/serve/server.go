// Package serve answers solve and translate requests over NDJSON, one
// request per line on the input and one response per line on the output.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aoc-go/aoc/pkg/puzzle"
	"github.com/aoc-go/aoc/pkg/sparse"
	"github.com/aoc-go/aoc/pkg/types"
	"go.uber.org/zap"
)

// Version is the server protocol version
const Version = "1.0.0"

// Solver solves registered days.
type Solver interface {
	Solve(ctx context.Context, day int, parts ...types.Part) ([]*types.Answer, error)
}

// Server manages the request loop
type Server struct {
	solver  Solver
	logger  *zap.Logger
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(solver Solver, in io.Reader, out io.Writer) *Server {
	return &Server{
		solver:  solver,
		logger:  zap.NewNop(),
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// SetLogger sets the logger used for request tracing.
func (s *Server) SetLogger(logger *zap.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until input closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(ctx, req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(ctx, req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(ctx context.Context, req Request) bool {
	s.logger.Debug("request", zap.String("type", req.Type))

	switch req.Type {
	case "solve":
		s.handleSolve(ctx, req.Payload)
	case "translate":
		s.handleTranslate(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	days := puzzle.Days()
	numbers := make([]int, len(days))
	for i, d := range days {
		numbers[i] = d.Number
	}
	s.send("ready", ReadyData{Version: Version, Days: numbers})
}

func (s *Server) handleSolve(ctx context.Context, payload json.RawMessage) {
	var p SolvePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("solve", err.Error())
		return
	}

	var parts []types.Part
	if p.Part != 0 {
		part, err := types.ParsePart(p.Part)
		if err != nil {
			s.sendError("solve", err.Error())
			return
		}
		parts = append(parts, part)
	}

	answers, err := s.solver.Solve(ctx, p.Day, parts...)
	if err != nil {
		s.sendError("solve", err.Error())
		return
	}

	s.send("solve", SolveResult{Answers: answers})
}

func (s *Server) handleTranslate(payload json.RawMessage) {
	var p TranslatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("translate", err.Error())
		return
	}

	result, err := translate(p)
	if err != nil {
		s.sendError("translate", err.Error())
		return
	}

	s.send("translate", result)
}

func translate(p TranslatePayload) (TranslateResult, error) {
	table := make(sparse.Table, 0, len(p.Table))
	for i, row := range p.Table {
		m, err := sparse.NewMapping(row.Dest, row.Src, row.Length)
		if err != nil {
			return TranslateResult{}, fmt.Errorf("table row %d: %w", i, err)
		}
		table = append(table, m)
	}

	srcs := make([]sparse.Range, 0, len(p.Ranges))
	for i, span := range p.Ranges {
		if len(span) != 2 {
			return TranslateResult{}, fmt.Errorf("range %d: want [start, length], got %d numbers", i, len(span))
		}
		r, err := sparse.New(span[0], span[1])
		if err != nil {
			return TranslateResult{}, fmt.Errorf("range %d: %w", i, err)
		}
		srcs = append(srcs, r)
	}

	out := sparse.TranslateAll(srcs, table)
	if p.Merge {
		out = sparse.Merge(out...)
	}

	result := TranslateResult{Ranges: make([]Span, len(out))}
	for i, r := range out {
		result.Ranges[i] = Span{r.Start(), r.Len()}
	}
	if lowest, ok := sparse.Min(out); ok {
		result.Lowest = &lowest
	}
	return result, nil
}

func (s *Server) send(respType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(respType, err.Error())
		return
	}
	s.encoder.Encode(Response{
		Success: true,
		Type:    respType,
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.logger.Debug("request failed", zap.String("type", reqType), zap.String("error", msg))
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
