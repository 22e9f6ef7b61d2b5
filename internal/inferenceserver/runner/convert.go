package runner

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"chassisml.io/coreservice/internal/inferenceserver/protowire"
)

// resultFromLua decodes the table a model chunk's predict function
// returned. The expected shape is:
//
//	{
//	  success = true,
//	  error = "",
//	  outputs = { {key=.., tag=.., ...variant fields}, ... },
//	  drift = {score = 0.0},           -- optional; {data_drift = {score = 0.0}} also accepted
//	  explanation = {tag=.., ...},     -- optional
//	}
func resultFromLua(t *lua.LTable) (Result, error) {
	r := Result{
		Success: boolField(t, "success", true),
		Error:   stringField(t, "error", ""),
	}

	outputsVal := t.RawGetString("outputs")
	if outputsTable, ok := outputsVal.(*lua.LTable); ok {
		n := outputsTable.Len()
		r.Outputs = make([]*protowire.PredictionOutput, 0, n)
		var convErr error
		outputsTable.ForEach(func(_, v lua.LValue) {
			if convErr != nil {
				return
			}
			ot, ok := v.(*lua.LTable)
			if !ok {
				convErr = fmt.Errorf("output entry is not a table")
				return
			}
			out, err := outputFromLua(ot)
			if err != nil {
				convErr = err
				return
			}
			r.Outputs = append(r.Outputs, out)
		})
		if convErr != nil {
			return Result{}, convErr
		}
	}

	if dt, ok := t.RawGetString("drift").(*lua.LTable); ok {
		if nested, ok := dt.RawGetString("data_drift").(*lua.LTable); ok {
			dt = nested
		}
		r.Drift = &protowire.Drift{Score: float32(numberField(dt, "score", 0))}
	}

	if et, ok := t.RawGetString("explanation").(*lua.LTable); ok {
		tag := stringField(et, "tag", "text")
		exp := &protowire.Explanation{}
		switch tag {
		case "image":
			exp.Tag = protowire.ExplanationImage
			exp.Image = []byte(stringField(et, "image", ""))
		default:
			exp.Tag = protowire.ExplanationText
			exp.Text = stringField(et, "text", "")
		}
		r.Explanation = exp
	}

	return r, nil
}

func outputFromLua(t *lua.LTable) (*protowire.PredictionOutput, error) {
	key := stringField(t, "key", "")
	tag := stringField(t, "tag", "")

	out := &protowire.PredictionOutput{Key: key}

	switch tag {
	case "classification":
		out.Tag = protowire.OutputClassification
		out.Classification = classificationFromLua(t)
	case "multi_classification":
		out.Tag = protowire.OutputMultiClassification
		out.MultiClassification = &protowire.MultiClassification{}
		if ct, ok := t.RawGetString("classifications").(*lua.LTable); ok {
			ct.ForEach(func(_, v lua.LValue) {
				if vt, ok := v.(*lua.LTable); ok {
					out.MultiClassification.Classifications = append(out.MultiClassification.Classifications, classificationFromLua(vt))
				}
			})
		}
	case "object_detection":
		out.Tag = protowire.OutputObjectDetection
		out.ObjectDetection = &protowire.ObjectDetection{}
		if dt, ok := t.RawGetString("detections").(*lua.LTable); ok {
			dt.ForEach(func(_, v lua.LValue) {
				vt, ok := v.(*lua.LTable)
				if !ok {
					return
				}
				out.ObjectDetection.Detections = append(out.ObjectDetection.Detections, &protowire.Detection{
					ClassName: stringField(vt, "class_name", ""),
					Score:     float32(numberField(vt, "score", 0)),
					Box:       boxFromLua(vt),
				})
			})
		}
	case "segmentation":
		out.Tag = protowire.OutputSegmentation
		out.Segmentation = &protowire.Segmentation{}
		if st, ok := t.RawGetString("segments").(*lua.LTable); ok {
			st.ForEach(func(_, v lua.LValue) {
				vt, ok := v.(*lua.LTable)
				if !ok {
					return
				}
				out.Segmentation.Segments = append(out.Segmentation.Segments, &protowire.Segment{
					ClassName: stringField(vt, "class_name", ""),
					Score:     float32(numberField(vt, "score", 0)),
					Mask:      []byte(stringField(vt, "mask", "")),
					Box:       boxFromLua(vt),
				})
			})
		}
	case "named_entity":
		out.Tag = protowire.OutputNamedEntity
		out.NamedEntity = &protowire.NamedEntity{}
		if et, ok := t.RawGetString("entities").(*lua.LTable); ok {
			et.ForEach(func(_, v lua.LValue) {
				vt, ok := v.(*lua.LTable)
				if !ok {
					return
				}
				out.NamedEntity.Entities = append(out.NamedEntity.Entities, &protowire.Entity{
					Text:  stringField(vt, "text", ""),
					Type:  stringField(vt, "type", ""),
					Score: float32(numberField(vt, "score", 0)),
					Start: int32(numberField(vt, "start", 0)),
					End:   int32(numberField(vt, "end", 0)),
				})
			})
		}
	case "image":
		out.Tag = protowire.OutputImage
		out.Image = &protowire.ImageOutput{Data: []byte(stringField(t, "data", ""))}
	case "data":
		out.Tag = protowire.OutputData
		out.Data = &protowire.DataOutput{
			Data:        []byte(stringField(t, "data", "")),
			ContentType: stringField(t, "content_type", "application/octet-stream"),
		}
	case "tensor":
		out.Tag = protowire.OutputTensor
		out.Tensor = &protowire.Tensor{
			Shape:  int64SliceField(t, "shape"),
			Values: float32SliceField(t, "values"),
		}
	case "text", "":
		out.Tag = protowire.OutputText
		out.Text = &protowire.TextOutput{Text: stringField(t, "text", "")}
	default:
		return nil, fmt.Errorf("output %q has unknown tag %q", key, tag)
	}

	return out, nil
}

func classificationFromLua(t *lua.LTable) *protowire.Classification {
	c := &protowire.Classification{}
	if pt, ok := t.RawGetString("predictions").(*lua.LTable); ok {
		pt.ForEach(func(_, v lua.LValue) {
			vt, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			c.Predictions = append(c.Predictions, &protowire.ClassPrediction{
				ClassName: stringField(vt, "class_name", ""),
				Score:     float32(numberField(vt, "score", 0)),
			})
		})
	}
	return c
}

func boxFromLua(t *lua.LTable) *protowire.BoundingBox {
	bt, ok := t.RawGetString("box").(*lua.LTable)
	if !ok {
		return nil
	}
	return &protowire.BoundingBox{
		X1: float32(numberField(bt, "x1", 0)),
		Y1: float32(numberField(bt, "y1", 0)),
		X2: float32(numberField(bt, "x2", 0)),
		Y2: float32(numberField(bt, "y2", 0)),
	}
}

func stringField(t *lua.LTable, name, def string) string {
	if s, ok := t.RawGetString(name).(lua.LString); ok {
		return string(s)
	}
	return def
}

func boolField(t *lua.LTable, name string, def bool) bool {
	v := t.RawGetString(name)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsBool(v)
}

func numberField(t *lua.LTable, name string, def float64) float64 {
	if n, ok := t.RawGetString(name).(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

func int64SliceField(t *lua.LTable, name string) []int64 {
	lt, ok := t.RawGetString(name).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []int64
	lt.ForEach(func(_, v lua.LValue) {
		if n, ok := v.(lua.LNumber); ok {
			out = append(out, int64(n))
		}
	})
	return out
}

func float32SliceField(t *lua.LTable, name string) []float32 {
	lt, ok := t.RawGetString(name).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []float32
	lt.ForEach(func(_, v lua.LValue) {
		if n, ok := v.(lua.LNumber); ok {
			out = append(out, float32(n))
		}
	})
	return out
}
