package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/reshape"
	"github.com/signadot/reshape/debug"
	"github.com/signadot/reshape/report"
	"github.com/signadot/reshape/sample"
	"github.com/signadot/reshape/source"
	"github.com/signadot/reshape/system/checkd/api"
)

// Handler dispatches one JSON-RPC request.
func (s *Server) Handler(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.Serve() {
		debug.Logf("checkd <- %s %s\n", req.Method(), string(req.Params()))
	}
	switch req.Method() {
	case api.MethodPing:
		return reply(ctx, &api.PingResult{Version: s.Spec.Version}, nil)
	case api.MethodCheck:
		var params api.CheckParams
		if err := unmarshalParams(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
		}
		return reply(ctx, s.check(&params), nil)
	case api.MethodApply:
		var params api.ApplyParams
		if err := unmarshalParams(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
		}
		res, err := s.apply(&params)
		return reply(ctx, res, err)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

func (s *Server) check(params *api.CheckParams) *api.CheckResult {
	conv := sample.Infer(source.Normalize(params.Sample))
	res := reshape.TryConvert(conv, source.Normalize(params.Doc))
	if res.Ok() {
		return &api.CheckResult{OK: true}
	}
	return &api.CheckResult{Issues: api.IssuesFromErrors(res.Errors())}
}

func (s *Server) apply(params *api.ApplyParams) (*api.ApplyResult, error) {
	conv := sample.Infer(source.Normalize(params.Sample))
	doc := source.Normalize(params.Doc)
	res := reshape.TryConvert(conv, doc)
	if !res.Ok() {
		return &api.ApplyResult{Issues: api.IssuesFromErrors(res.Errors())}, nil
	}
	out := &api.ApplyResult{OK: true, Doc: res.Value()}
	if params.Patch {
		p, err := report.MergePatch(doc, res.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInternal, err)
		}
		out.Patch = p
	}
	return out, nil
}

// unmarshalParams decodes with UseNumber so documents arriving over
// the wire normalize the same way file input does.
func unmarshalParams(data json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
