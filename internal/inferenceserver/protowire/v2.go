package protowire

import "fmt"

// PredictRequest is the openmodel.v2.InferenceService Predict request.
type PredictRequest struct {
	Inputs []*InputItem      `protobuf:"bytes,1,rep,name=inputs,proto3" json:"inputs,omitempty"`
	Tags   map[string]string `protobuf:"bytes,2,rep,name=tags,proto3" json:"tags,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *PredictRequest) Reset()         { *m = PredictRequest{} }
func (m *PredictRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PredictRequest) ProtoMessage()    {}

// PredictResponse is the openmodel.v2.InferenceService Predict response.
type PredictResponse struct {
	Outputs         []*PredictionOutput `protobuf:"bytes,1,rep,name=outputs,proto3" json:"outputs,omitempty"`
	Success         bool                `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Error           string              `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	Explanation     *Explanation        `protobuf:"bytes,4,opt,name=explanation,proto3" json:"explanation,omitempty"`
	Drift           *Drift              `protobuf:"bytes,5,opt,name=drift,proto3" json:"drift,omitempty"`
	ModelIdentifier string              `protobuf:"bytes,6,opt,name=model_identifier,json=modelIdentifier,proto3" json:"model_identifier,omitempty"`
	ModelVersion    string              `protobuf:"bytes,7,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	Timings         *Timings            `protobuf:"bytes,8,opt,name=timings,proto3" json:"timings,omitempty"`
	Tags            map[string]string   `protobuf:"bytes,9,rep,name=tags,proto3" json:"tags,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *PredictResponse) Reset()         { *m = PredictResponse{} }
func (m *PredictResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PredictResponse) ProtoMessage()    {}

// StatusRequest carries no fields; status is always whole-container.
type StatusRequest struct{}

func (m *StatusRequest) Reset()         { *m = StatusRequest{} }
func (m *StatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusRequest) ProtoMessage()    {}

// StatusResponse reports model readiness plus the metadata blob loaded at
// startup, returned verbatim rather than re-parsed per call.
type StatusResponse struct {
	StatusCode int32  `protobuf:"varint,1,opt,name=status_code,json=statusCode,proto3" json:"status_code,omitempty"`
	Status     string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Message    string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Metadata   []byte `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatusResponse) ProtoMessage()    {}

// ContainerInfoRequest carries no fields.
type ContainerInfoRequest struct{}

func (m *ContainerInfoRequest) Reset()         { *m = ContainerInfoRequest{} }
func (m *ContainerInfoRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ContainerInfoRequest) ProtoMessage()    {}

// ContainerInfoResponse is the pre-loaded container metadata blob.
type ContainerInfoResponse struct {
	ContainerInfo []byte `protobuf:"bytes,1,opt,name=container_info,json=containerInfo,proto3" json:"container_info,omitempty"`
}

func (m *ContainerInfoResponse) Reset()         { *m = ContainerInfoResponse{} }
func (m *ContainerInfoResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ContainerInfoResponse) ProtoMessage()    {}

// ShutdownRequest carries no fields.
type ShutdownRequest struct{}

func (m *ShutdownRequest) Reset()         { *m = ShutdownRequest{} }
func (m *ShutdownRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ShutdownRequest) ProtoMessage()    {}

// ShutdownResponse acknowledges a shutdown request before the process exits.
type ShutdownResponse struct {
	Acknowledged bool `protobuf:"varint,1,opt,name=acknowledged,proto3" json:"acknowledged,omitempty"`
}

func (m *ShutdownResponse) Reset()         { *m = ShutdownResponse{} }
func (m *ShutdownResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ShutdownResponse) ProtoMessage()    {}
