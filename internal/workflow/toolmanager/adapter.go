package toolmanager

import (
	"context"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// adapter decodes string arguments into a typed request, validates it and
// calls the tool.
type adapter[R any, P request[R]] struct {
	tool runner[P]
}

// Adapt wraps a typed tool for registration. Only the request type needs to
// be named:
//
//	toolmanager.Adapt[file.ReadFileRequest](readTool)
func Adapt[R any, P request[R]](t runner[P]) toolImpl {
	return &adapter[R, P]{tool: t}
}

func (a *adapter[R, P]) Declaration() tool.Declaration {
	return a.tool.Declaration()
}

func (a *adapter[R, P]) Execute(ctx context.Context, args tool.Args) (tool.Result, error) {
	req := P(new(R))
	if err := decode(args, req); err != nil {
		return tool.Result{}, err
	}
	if err := req.Validate(); err != nil {
		return tool.Result{}, err
	}
	return a.tool.Run(ctx, req)
}

// decode maps arguments onto out by their mapstructure tags. Values are
// weakly typed so "1" fills a numeric field; unknown keys are ignored.
func decode(args tool.Args, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       noneAsNil,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args.Map()); err != nil {
		return &tool.ArgumentError{Name: "arguments", Reason: err.Error()}
	}
	return nil
}

// noneAsNil leaves optional numeric fields such as timeout unset when the
// model wrote the text sentinel None. Text fields always keep the literal
// value; the few that treat None as absent do so in Validate.
func noneAsNil(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Ptr || from.Kind() != reflect.String {
		return data, nil
	}
	if to.Elem().Kind() == reflect.String {
		return data, nil
	}
	if s, ok := data.(string); ok && tool.IsNone(s) {
		return nil, nil
	}
	return data, nil
}
