// Package protowire hand-authors the wire messages for both inference
// gRPC services in the classic pre-APIv2 style: each message implements
// only Reset/String/ProtoMessage and carries `protobuf:"..."` struct tags,
// which grpc-go's default codec marshals through the protobuf runtime's
// legacy-message reflection path. There is no .proto source and no protoc
// invocation in this tree; these types are the wire contract.
package protowire

import "fmt"

// Timings reports per-stage latencies in seconds, stamped onto every v2
// Predict response.
type Timings struct {
	ModelExecution float64 `protobuf:"fixed64,1,opt,name=model_execution,json=modelExecution,proto3" json:"model_execution,omitempty"`
	Preprocessing  float64 `protobuf:"fixed64,2,opt,name=preprocessing,proto3" json:"preprocessing,omitempty"`
	Postprocessing float64 `protobuf:"fixed64,3,opt,name=postprocessing,proto3" json:"postprocessing,omitempty"`
	Formatting     float64 `protobuf:"fixed64,4,opt,name=formatting,proto3" json:"formatting,omitempty"`
	Total          float64 `protobuf:"fixed64,5,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *Timings) Reset()         { *m = Timings{} }
func (m *Timings) String() string { return fmt.Sprintf("%+v", *m) }
func (*Timings) ProtoMessage()    {}

// InputSourceTag discriminates InputItem's text/data union.
type InputSourceTag int32

const (
	InputSourceText InputSourceTag = 0
	InputSourceData InputSourceTag = 1
)

// InputItem is one {key, source} pair from a PredictRequest.
type InputItem struct {
	Key    string         `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Source InputSourceTag `protobuf:"varint,2,opt,name=source,proto3,enum=openmodel.v2.InputSourceTag" json:"source,omitempty"`
	Text   string         `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	Data   []byte         `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *InputItem) Reset()         { *m = InputItem{} }
func (m *InputItem) String() string { return fmt.Sprintf("%+v", *m) }
func (*InputItem) ProtoMessage()    {}

// Drift carries a model-reported distributional-change scalar.
type Drift struct {
	Score float32 `protobuf:"fixed32,1,opt,name=score,proto3" json:"score,omitempty"`
}

func (m *Drift) Reset()         { *m = Drift{} }
func (m *Drift) String() string { return fmt.Sprintf("%+v", *m) }
func (*Drift) ProtoMessage()    {}

// ExplanationTag discriminates Explanation's none/image/text union.
type ExplanationTag int32

const (
	ExplanationNone  ExplanationTag = 0
	ExplanationImage ExplanationTag = 1
	ExplanationText  ExplanationTag = 2
)

type Explanation struct {
	Tag   ExplanationTag `protobuf:"varint,1,opt,name=tag,proto3,enum=openmodel.v2.ExplanationTag" json:"tag,omitempty"`
	Image []byte         `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	Text  string         `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *Explanation) Reset()         { *m = Explanation{} }
func (m *Explanation) String() string { return fmt.Sprintf("%+v", *m) }
func (*Explanation) ProtoMessage()    {}

// OutputTag discriminates the PredictionOutput sum type. Exactly one of
// the correspondingly-named fields on PredictionOutput is populated.
type OutputTag int32

const (
	OutputClassification      OutputTag = 0
	OutputMultiClassification OutputTag = 1
	OutputObjectDetection     OutputTag = 2
	OutputSegmentation        OutputTag = 3
	OutputNamedEntity         OutputTag = 4
	OutputText                OutputTag = 5
	OutputImage               OutputTag = 6
	OutputData                OutputTag = 7
	OutputTensor              OutputTag = 8
)

type ClassPrediction struct {
	ClassName string  `protobuf:"bytes,1,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	Score     float32 `protobuf:"fixed32,2,opt,name=score,proto3" json:"score,omitempty"`
}

func (m *ClassPrediction) Reset()         { *m = ClassPrediction{} }
func (m *ClassPrediction) String() string { return fmt.Sprintf("%+v", *m) }
func (*ClassPrediction) ProtoMessage()    {}

type Classification struct {
	Predictions []*ClassPrediction `protobuf:"bytes,1,rep,name=predictions,proto3" json:"predictions,omitempty"`
}

func (m *Classification) Reset()         { *m = Classification{} }
func (m *Classification) String() string { return fmt.Sprintf("%+v", *m) }
func (*Classification) ProtoMessage()    {}

type MultiClassification struct {
	Classifications []*Classification `protobuf:"bytes,1,rep,name=classifications,proto3" json:"classifications,omitempty"`
}

func (m *MultiClassification) Reset()         { *m = MultiClassification{} }
func (m *MultiClassification) String() string { return fmt.Sprintf("%+v", *m) }
func (*MultiClassification) ProtoMessage()    {}

type BoundingBox struct {
	X1 float32 `protobuf:"fixed32,1,opt,name=x1,proto3" json:"x1,omitempty"`
	Y1 float32 `protobuf:"fixed32,2,opt,name=y1,proto3" json:"y1,omitempty"`
	X2 float32 `protobuf:"fixed32,3,opt,name=x2,proto3" json:"x2,omitempty"`
	Y2 float32 `protobuf:"fixed32,4,opt,name=y2,proto3" json:"y2,omitempty"`
}

func (m *BoundingBox) Reset()         { *m = BoundingBox{} }
func (m *BoundingBox) String() string { return fmt.Sprintf("%+v", *m) }
func (*BoundingBox) ProtoMessage()    {}

type Detection struct {
	ClassName string       `protobuf:"bytes,1,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	Score     float32      `protobuf:"fixed32,2,opt,name=score,proto3" json:"score,omitempty"`
	Box       *BoundingBox `protobuf:"bytes,3,opt,name=box,proto3" json:"box,omitempty"`
}

func (m *Detection) Reset()         { *m = Detection{} }
func (m *Detection) String() string { return fmt.Sprintf("%+v", *m) }
func (*Detection) ProtoMessage()    {}

type ObjectDetection struct {
	Detections []*Detection `protobuf:"bytes,1,rep,name=detections,proto3" json:"detections,omitempty"`
}

func (m *ObjectDetection) Reset()         { *m = ObjectDetection{} }
func (m *ObjectDetection) String() string { return fmt.Sprintf("%+v", *m) }
func (*ObjectDetection) ProtoMessage()    {}

type Segment struct {
	ClassName string       `protobuf:"bytes,1,opt,name=class_name,json=className,proto3" json:"class_name,omitempty"`
	Score     float32      `protobuf:"fixed32,2,opt,name=score,proto3" json:"score,omitempty"`
	Mask      []byte       `protobuf:"bytes,3,opt,name=mask,proto3" json:"mask,omitempty"`
	Box       *BoundingBox `protobuf:"bytes,4,opt,name=box,proto3" json:"box,omitempty"`
}

func (m *Segment) Reset()         { *m = Segment{} }
func (m *Segment) String() string { return fmt.Sprintf("%+v", *m) }
func (*Segment) ProtoMessage()    {}

type Segmentation struct {
	Segments []*Segment `protobuf:"bytes,1,rep,name=segments,proto3" json:"segments,omitempty"`
}

func (m *Segmentation) Reset()         { *m = Segmentation{} }
func (m *Segmentation) String() string { return fmt.Sprintf("%+v", *m) }
func (*Segmentation) ProtoMessage()    {}

type Entity struct {
	Text  string  `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Type  string  `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Score float32 `protobuf:"fixed32,3,opt,name=score,proto3" json:"score,omitempty"`
	Start int32   `protobuf:"varint,4,opt,name=start,proto3" json:"start,omitempty"`
	End   int32   `protobuf:"varint,5,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *Entity) Reset()         { *m = Entity{} }
func (m *Entity) String() string { return fmt.Sprintf("%+v", *m) }
func (*Entity) ProtoMessage()    {}

type NamedEntity struct {
	Entities []*Entity `protobuf:"bytes,1,rep,name=entities,proto3" json:"entities,omitempty"`
}

func (m *NamedEntity) Reset()         { *m = NamedEntity{} }
func (m *NamedEntity) String() string { return fmt.Sprintf("%+v", *m) }
func (*NamedEntity) ProtoMessage()    {}

type TextOutput struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
}

func (m *TextOutput) Reset()         { *m = TextOutput{} }
func (m *TextOutput) String() string { return fmt.Sprintf("%+v", *m) }
func (*TextOutput) ProtoMessage()    {}

type ImageOutput struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ImageOutput) Reset()         { *m = ImageOutput{} }
func (m *ImageOutput) String() string { return fmt.Sprintf("%+v", *m) }
func (*ImageOutput) ProtoMessage()    {}

type DataOutput struct {
	Data        []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	ContentType string `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
}

func (m *DataOutput) Reset()         { *m = DataOutput{} }
func (m *DataOutput) String() string { return fmt.Sprintf("%+v", *m) }
func (*DataOutput) ProtoMessage()    {}

// Tensor is a raw numeric tensor output, supplemented from the original v2
// proto schema (the distilled spec's PredictionResult list omits it).
type Tensor struct {
	Shape  []int64   `protobuf:"varint,1,rep,packed,name=shape,proto3" json:"shape,omitempty"`
	Values []float32 `protobuf:"fixed32,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *Tensor) Reset()         { *m = Tensor{} }
func (m *Tensor) String() string { return fmt.Sprintf("%+v", *m) }
func (*Tensor) ProtoMessage()    {}

// PredictionOutput is the tagged union the spec requires to be modeled as
// a sum type, never a subtype hierarchy: Tag selects which of the
// per-variant fields below is populated.
type PredictionOutput struct {
	Key                  string                `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Tag                  OutputTag             `protobuf:"varint,2,opt,name=tag,proto3,enum=openmodel.v2.OutputTag" json:"tag,omitempty"`
	Classification       *Classification       `protobuf:"bytes,3,opt,name=classification,proto3" json:"classification,omitempty"`
	MultiClassification  *MultiClassification  `protobuf:"bytes,4,opt,name=multi_classification,json=multiClassification,proto3" json:"multi_classification,omitempty"`
	ObjectDetection      *ObjectDetection      `protobuf:"bytes,5,opt,name=object_detection,json=objectDetection,proto3" json:"object_detection,omitempty"`
	Segmentation         *Segmentation         `protobuf:"bytes,6,opt,name=segmentation,proto3" json:"segmentation,omitempty"`
	NamedEntity          *NamedEntity          `protobuf:"bytes,7,opt,name=named_entity,json=namedEntity,proto3" json:"named_entity,omitempty"`
	Text                 *TextOutput           `protobuf:"bytes,8,opt,name=text,proto3" json:"text,omitempty"`
	Image                *ImageOutput          `protobuf:"bytes,9,opt,name=image,proto3" json:"image,omitempty"`
	Data                 *DataOutput           `protobuf:"bytes,10,opt,name=data,proto3" json:"data,omitempty"`
	Tensor               *Tensor               `protobuf:"bytes,11,opt,name=tensor,proto3" json:"tensor,omitempty"`
}

func (m *PredictionOutput) Reset()         { *m = PredictionOutput{} }
func (m *PredictionOutput) String() string { return fmt.Sprintf("%+v", *m) }
func (*PredictionOutput) ProtoMessage()    {}
