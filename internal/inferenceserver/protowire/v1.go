package protowire

import "fmt"

// KeyedInputV1 is one named binary input within a batch element, mirroring
// the legacy ModzyModel wire shape that predates the typed v2 service.
type KeyedInputV1 struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Data []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *KeyedInputV1) Reset()         { *m = KeyedInputV1{} }
func (m *KeyedInputV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*KeyedInputV1) ProtoMessage()    {}

// InputSetV1 is one element of a batch: a map of input keys to bytes.
type InputSetV1 struct {
	Input []*KeyedInputV1 `protobuf:"bytes,1,rep,name=input,proto3" json:"input,omitempty"`
}

func (m *InputSetV1) Reset()         { *m = InputSetV1{} }
func (m *InputSetV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*InputSetV1) ProtoMessage()    {}

// RunRequest is the legacy Run call: an ordered batch of input sets.
type RunRequest struct {
	Inputs []*InputSetV1 `protobuf:"bytes,1,rep,name=inputs,proto3" json:"inputs,omitempty"`
}

func (m *RunRequest) Reset()         { *m = RunRequest{} }
func (m *RunRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunRequest) ProtoMessage()    {}

// KeyedOutputV1 is one named binary output within a batch element.
type KeyedOutputV1 struct {
	Key  string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Data []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *KeyedOutputV1) Reset()         { *m = KeyedOutputV1{} }
func (m *KeyedOutputV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*KeyedOutputV1) ProtoMessage()    {}

// BatchOutputV1 is one element of a batched Run response.
type BatchOutputV1 struct {
	Output  []*KeyedOutputV1 `protobuf:"bytes,1,rep,name=output,proto3" json:"output,omitempty"`
	Success bool             `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Error   string           `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *BatchOutputV1) Reset()         { *m = BatchOutputV1{} }
func (m *BatchOutputV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*BatchOutputV1) ProtoMessage()    {}

// RunResponse is the legacy Run response: one BatchOutputV1 per input set,
// in the same order as the request.
type RunResponse struct {
	StatusCode int32            `protobuf:"varint,1,opt,name=status_code,json=statusCode,proto3" json:"status_code,omitempty"`
	Status     string           `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Message    string           `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Outputs    []*BatchOutputV1 `protobuf:"bytes,4,rep,name=outputs,proto3" json:"outputs,omitempty"`
}

func (m *RunResponse) Reset()         { *m = RunResponse{} }
func (m *RunResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RunResponse) ProtoMessage()    {}

// StatusRequestV1 carries no fields.
type StatusRequestV1 struct{}

func (m *StatusRequestV1) Reset()         { *m = StatusRequestV1{} }
func (m *StatusRequestV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusRequestV1) ProtoMessage()    {}

// StatusResponseV1 mirrors StatusResponse but is kept distinct since the
// two services are versioned independently on the wire.
type StatusResponseV1 struct {
	StatusCode int32  `protobuf:"varint,1,opt,name=status_code,json=statusCode,proto3" json:"status_code,omitempty"`
	Status     string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Message    string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	ModelInfo  []byte `protobuf:"bytes,4,opt,name=model_info,json=modelInfo,proto3" json:"model_info,omitempty"`
}

func (m *StatusResponseV1) Reset()         { *m = StatusResponseV1{} }
func (m *StatusResponseV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusResponseV1) ProtoMessage()    {}

// ShutdownRequestV1 carries no fields.
type ShutdownRequestV1 struct{}

func (m *ShutdownRequestV1) Reset()         { *m = ShutdownRequestV1{} }
func (m *ShutdownRequestV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*ShutdownRequestV1) ProtoMessage()    {}

// ShutdownResponseV1 acknowledges a legacy shutdown request.
type ShutdownResponseV1 struct {
	Acknowledged bool `protobuf:"varint,1,opt,name=acknowledged,proto3" json:"acknowledged,omitempty"`
}

func (m *ShutdownResponseV1) Reset()         { *m = ShutdownResponseV1{} }
func (m *ShutdownResponseV1) String() string { return fmt.Sprintf("%+v", *m) }
func (*ShutdownResponseV1) ProtoMessage()    {}
