// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docparse/v1/docparse.proto

package docparsev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Position struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float64                `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Width         float64                `protobuf:"fixed64,3,opt,name=width,proto3" json:"width,omitempty"`
	Height        float64                `protobuf:"fixed64,4,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Position) Reset() {
	*x = Position{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{0}
}

func (x *Position) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Position) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Position) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *Position) GetHeight() float64 {
	if x != nil {
		return x.Height
	}
	return 0
}

type Field struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Page          uint32                 `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	Position      *Position              `protobuf:"bytes,3,opt,name=position,proto3" json:"position,omitempty"`
	Confidence    float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Source        string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	FieldType     string                 `protobuf:"bytes,6,opt,name=field_type,json=fieldType,proto3" json:"field_type,omitempty"`
	OriginalLine  string                 `protobuf:"bytes,7,opt,name=original_line,json=originalLine,proto3" json:"original_line,omitempty"`
	TableData     map[string]string      `protobuf:"bytes,8,rep,name=table_data,json=tableData,proto3" json:"table_data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	TableIndex    uint32                 `protobuf:"varint,9,opt,name=table_index,json=tableIndex,proto3" json:"table_index,omitempty"`
	RowIndex      uint32                 `protobuf:"varint,10,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Field) Reset() {
	*x = Field{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Field) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Field) ProtoMessage() {}

func (x *Field) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Field.ProtoReflect.Descriptor instead.
func (*Field) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{1}
}

func (x *Field) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Field) GetPage() uint32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *Field) GetPosition() *Position {
	if x != nil {
		return x.Position
	}
	return nil
}

func (x *Field) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Field) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Field) GetFieldType() string {
	if x != nil {
		return x.FieldType
	}
	return ""
}

func (x *Field) GetOriginalLine() string {
	if x != nil {
		return x.OriginalLine
	}
	return ""
}

func (x *Field) GetTableData() map[string]string {
	if x != nil {
		return x.TableData
	}
	return nil
}

func (x *Field) GetTableIndex() uint32 {
	if x != nil {
		return x.TableIndex
	}
	return 0
}

func (x *Field) GetRowIndex() uint32 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

type Stats struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalFields    uint32                 `protobuf:"varint,1,opt,name=total_fields,json=totalFields,proto3" json:"total_fields,omitempty"`
	PatternFields  uint32                 `protobuf:"varint,2,opt,name=pattern_fields,json=patternFields,proto3" json:"pattern_fields,omitempty"`
	TableFields    uint32                 `protobuf:"varint,3,opt,name=table_fields,json=tableFields,proto3" json:"table_fields,omitempty"`
	AmountFields   uint32                 `protobuf:"varint,4,opt,name=amount_fields,json=amountFields,proto3" json:"amount_fields,omitempty"`
	LayoutIncluded uint32                 `protobuf:"varint,5,opt,name=layout_included,json=layoutIncluded,proto3" json:"layout_included,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Stats) Reset() {
	*x = Stats{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Stats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Stats) ProtoMessage() {}

func (x *Stats) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Stats.ProtoReflect.Descriptor instead.
func (*Stats) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{2}
}

func (x *Stats) GetTotalFields() uint32 {
	if x != nil {
		return x.TotalFields
	}
	return 0
}

func (x *Stats) GetPatternFields() uint32 {
	if x != nil {
		return x.PatternFields
	}
	return 0
}

func (x *Stats) GetTableFields() uint32 {
	if x != nil {
		return x.TableFields
	}
	return 0
}

func (x *Stats) GetAmountFields() uint32 {
	if x != nil {
		return x.AmountFields
	}
	return 0
}

func (x *Stats) GetLayoutIncluded() uint32 {
	if x != nil {
		return x.LayoutIncluded
	}
	return 0
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	Quantity      int32                  `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	HasUnitPrice  bool                   `protobuf:"varint,4,opt,name=has_unit_price,json=hasUnitPrice,proto3" json:"has_unit_price,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{3}
}

func (x *LineItem) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *LineItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *LineItem) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *LineItem) GetHasUnitPrice() bool {
	if x != nil {
		return x.HasUnitPrice
	}
	return false
}

func (x *LineItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type DocumentAst struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Title            string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	ReferenceNumbers map[string]string      `protobuf:"bytes,2,rep,name=reference_numbers,json=referenceNumbers,proto3" json:"reference_numbers,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Issuer           string                 `protobuf:"bytes,3,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Recipient        string                 `protobuf:"bytes,4,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Items            []*LineItem            `protobuf:"bytes,5,rep,name=items,proto3" json:"items,omitempty"`
	DueDate          string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	SignedDate       string                 `protobuf:"bytes,7,opt,name=signed_date,json=signedDate,proto3" json:"signed_date,omitempty"`
	RawLines         []string               `protobuf:"bytes,8,rep,name=raw_lines,json=rawLines,proto3" json:"raw_lines,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DocumentAst) Reset() {
	*x = DocumentAst{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentAst) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentAst) ProtoMessage() {}

func (x *DocumentAst) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentAst.ProtoReflect.Descriptor instead.
func (*DocumentAst) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{4}
}

func (x *DocumentAst) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *DocumentAst) GetReferenceNumbers() map[string]string {
	if x != nil {
		return x.ReferenceNumbers
	}
	return nil
}

func (x *DocumentAst) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *DocumentAst) GetRecipient() string {
	if x != nil {
		return x.Recipient
	}
	return ""
}

func (x *DocumentAst) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *DocumentAst) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *DocumentAst) GetSignedDate() string {
	if x != nil {
		return x.SignedDate
	}
	return ""
}

func (x *DocumentAst) GetRawLines() []string {
	if x != nil {
		return x.RawLines
	}
	return nil
}

type ParseDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentRequest) Reset() {
	*x = ParseDocumentRequest{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentRequest) ProtoMessage() {}

func (x *ParseDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentRequest.ProtoReflect.Descriptor instead.
func (*ParseDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{5}
}

func (x *ParseDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ParseDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ParseDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Fields        []*Field               `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	DocumentAst   *DocumentAst           `protobuf:"bytes,3,opt,name=document_ast,json=documentAst,proto3" json:"document_ast,omitempty"`
	Stats         *Stats                 `protobuf:"bytes,4,opt,name=stats,proto3" json:"stats,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Traceback     string                 `protobuf:"bytes,6,opt,name=traceback,proto3" json:"traceback,omitempty"`
	RunId         string                 `protobuf:"bytes,7,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentResponse) Reset() {
	*x = ParseDocumentResponse{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentResponse) ProtoMessage() {}

func (x *ParseDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentResponse.ProtoReflect.Descriptor instead.
func (*ParseDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{6}
}

func (x *ParseDocumentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ParseDocumentResponse) GetFields() []*Field {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ParseDocumentResponse) GetDocumentAst() *DocumentAst {
	if x != nil {
		return x.DocumentAst
	}
	return nil
}

func (x *ParseDocumentResponse) GetStats() *Stats {
	if x != nil {
		return x.Stats
	}
	return nil
}

func (x *ParseDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ParseDocumentResponse) GetTraceback() string {
	if x != nil {
		return x.Traceback
	}
	return ""
}

func (x *ParseDocumentResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type ParseRunSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Success       bool                   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	TotalFields   uint32                 `protobuf:"varint,4,opt,name=total_fields,json=totalFields,proto3" json:"total_fields,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseRunSummary) Reset() {
	*x = ParseRunSummary{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseRunSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseRunSummary) ProtoMessage() {}

func (x *ParseRunSummary) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseRunSummary.ProtoReflect.Descriptor instead.
func (*ParseRunSummary) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{7}
}

func (x *ParseRunSummary) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ParseRunSummary) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ParseRunSummary) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ParseRunSummary) GetTotalFields() uint32 {
	if x != nil {
		return x.TotalFields
	}
	return 0
}

func (x *ParseRunSummary) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ParseRunSummary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetParseRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseRunRequest) Reset() {
	*x = GetParseRunRequest{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseRunRequest) ProtoMessage() {}

func (x *GetParseRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseRunRequest.ProtoReflect.Descriptor instead.
func (*GetParseRunRequest) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{8}
}

func (x *GetParseRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetParseRunResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Run   *ParseRunSummary       `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	// The archived result envelope as JSON.
	ResultJson    []byte `protobuf:"bytes,2,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseRunResponse) Reset() {
	*x = GetParseRunResponse{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseRunResponse) ProtoMessage() {}

func (x *GetParseRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseRunResponse.ProtoReflect.Descriptor instead.
func (*GetParseRunResponse) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{9}
}

func (x *GetParseRunResponse) GetRun() *ParseRunSummary {
	if x != nil {
		return x.Run
	}
	return nil
}

func (x *GetParseRunResponse) GetResultJson() []byte {
	if x != nil {
		return x.ResultJson
	}
	return nil
}

type ListParseRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         uint32                 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseRunsRequest) Reset() {
	*x = ListParseRunsRequest{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseRunsRequest) ProtoMessage() {}

func (x *ListParseRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseRunsRequest.ProtoReflect.Descriptor instead.
func (*ListParseRunsRequest) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{10}
}

func (x *ListParseRunsRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListParseRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*ParseRunSummary     `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListParseRunsResponse) Reset() {
	*x = ListParseRunsResponse{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListParseRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListParseRunsResponse) ProtoMessage() {}

func (x *ListParseRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListParseRunsResponse.ProtoReflect.Descriptor instead.
func (*ListParseRunsResponse) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{11}
}

func (x *ListParseRunsResponse) GetRuns() []*ParseRunSummary {
	if x != nil {
		return x.Runs
	}
	return nil
}

type ExportParseRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportParseRunRequest) Reset() {
	*x = ExportParseRunRequest{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportParseRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportParseRunRequest) ProtoMessage() {}

func (x *ExportParseRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportParseRunRequest.ProtoReflect.Descriptor instead.
func (*ExportParseRunRequest) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{12}
}

func (x *ExportParseRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type ExportParseRunResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// XLSX workbook bytes.
	Data          []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportParseRunResponse) Reset() {
	*x = ExportParseRunResponse{}
	mi := &file_docparse_v1_docparse_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportParseRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportParseRunResponse) ProtoMessage() {}

func (x *ExportParseRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docparse_v1_docparse_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportParseRunResponse.ProtoReflect.Descriptor instead.
func (*ExportParseRunResponse) Descriptor() ([]byte, []int) {
	return file_docparse_v1_docparse_proto_rawDescGZIP(), []int{13}
}

func (x *ExportParseRunResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

var File_docparse_v1_docparse_proto protoreflect.FileDescriptor

const file_docparse_v1_docparse_proto_rawDesc = "" +
	"\n" +
	"\x1adocparse/v1/docparse.proto\x12\vdocparse.v1\"T\n" +
	"\bPosition\x12\f\n" +
	"\x01x\x18\x01 \x01(\x01R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x01R\x01y\x12\x14\n" +
	"\x05width\x18\x03 \x01(\x01R\x05width\x12\x16\n" +
	"\x06height\x18\x04 \x01(\x01R\x06height\"\x9e\x03\n" +
	"\x05Field\x12\x14\n" +
	"\x05value\x18\x01 \x01(\tR\x05value\x12\x12\n" +
	"\x04page\x18\x02 \x01(\rR\x04page\x121\n" +
	"\bposition\x18\x03 \x01(\v2\x15.docparse.v1.PositionR\bposition\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x1d\n" +
	"\n" +
	"field_type\x18\x06 \x01(\tR\tfieldType\x12#\n" +
	"\roriginal_line\x18\a \x01(\tR\foriginalLine\x12@\n" +
	"\n" +
	"table_data\x18\b \x03(\v2!.docparse.v1.Field.TableDataEntryR\ttableData\x12\x1f\n" +
	"\vtable_index\x18\t \x01(\rR\n" +
	"tableIndex\x12\x1b\n" +
	"\trow_index\x18\n" +
	" \x01(\rR\browIndex\x1a<\n" +
	"\x0eTableDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xc2\x01\n" +
	"\x05Stats\x12!\n" +
	"\ftotal_fields\x18\x01 \x01(\rR\vtotalFields\x12%\n" +
	"\x0epattern_fields\x18\x02 \x01(\rR\rpatternFields\x12!\n" +
	"\ftable_fields\x18\x03 \x01(\rR\vtableFields\x12#\n" +
	"\ramount_fields\x18\x04 \x01(\rR\famountFields\x12'\n" +
	"\x0flayout_included\x18\x05 \x01(\rR\x0elayoutIncluded\"\x99\x01\n" +
	"\bLineItem\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x05R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12$\n" +
	"\x0ehas_unit_price\x18\x04 \x01(\bR\fhasUnitPrice\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\"\x81\x03\n" +
	"\vDocumentAst\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12[\n" +
	"\x11reference_numbers\x18\x02 \x03(\v2..docparse.v1.DocumentAst.ReferenceNumbersEntryR\x10referenceNumbers\x12\x16\n" +
	"\x06issuer\x18\x03 \x01(\tR\x06issuer\x12\x1c\n" +
	"\trecipient\x18\x04 \x01(\tR\trecipient\x12+\n" +
	"\x05items\x18\x05 \x03(\v2\x15.docparse.v1.LineItemR\x05items\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12\x1f\n" +
	"\vsigned_date\x18\a \x01(\tR\n" +
	"signedDate\x12\x1b\n" +
	"\traw_lines\x18\b \x03(\tR\brawLines\x1aC\n" +
	"\x15ReferenceNumbersEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"L\n" +
	"\x14ParseDocumentRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x8f\x02\n" +
	"\x15ParseDocumentResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12*\n" +
	"\x06fields\x18\x02 \x03(\v2\x12.docparse.v1.FieldR\x06fields\x12;\n" +
	"\fdocument_ast\x18\x03 \x01(\v2\x18.docparse.v1.DocumentAstR\vdocumentAst\x12(\n" +
	"\x05stats\x18\x04 \x01(\v2\x12.docparse.v1.StatsR\x05stats\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12\x1c\n" +
	"\ttraceback\x18\x06 \x01(\tR\ttraceback\x12\x15\n" +
	"\x06run_id\x18\a \x01(\tR\x05runId\"\xb6\x01\n" +
	"\x0fParseRunSummary\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\bR\asuccess\x12!\n" +
	"\ftotal_fields\x18\x04 \x01(\rR\vtotalFields\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"+\n" +
	"\x12GetParseRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"f\n" +
	"\x13GetParseRunResponse\x12.\n" +
	"\x03run\x18\x01 \x01(\v2\x1c.docparse.v1.ParseRunSummaryR\x03run\x12\x1f\n" +
	"\vresult_json\x18\x02 \x01(\fR\n" +
	"resultJson\",\n" +
	"\x14ListParseRunsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\rR\x05limit\"I\n" +
	"\x15ListParseRunsResponse\x120\n" +
	"\x04runs\x18\x01 \x03(\v2\x1c.docparse.v1.ParseRunSummaryR\x04runs\".\n" +
	"\x15ExportParseRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\",\n" +
	"\x16ExportParseRunResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data2\xeb\x02\n" +
	"\fParseService\x12V\n" +
	"\rParseDocument\x12!.docparse.v1.ParseDocumentRequest\x1a\".docparse.v1.ParseDocumentResponse\x12P\n" +
	"\vGetParseRun\x12\x1f.docparse.v1.GetParseRunRequest\x1a .docparse.v1.GetParseRunResponse\x12V\n" +
	"\rListParseRuns\x12!.docparse.v1.ListParseRunsRequest\x1a\".docparse.v1.ListParseRunsResponse\x12Y\n" +
	"\x0eExportParseRun\x12\".docparse.v1.ExportParseRunRequest\x1a#.docparse.v1.ExportParseRunResponseB@Z>github.com/fieldline/docparse/gen/proto/docparse/v1;docparsev1b\x06proto3"

var (
	file_docparse_v1_docparse_proto_rawDescOnce sync.Once
	file_docparse_v1_docparse_proto_rawDescData []byte
)

func file_docparse_v1_docparse_proto_rawDescGZIP() []byte {
	file_docparse_v1_docparse_proto_rawDescOnce.Do(func() {
		file_docparse_v1_docparse_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docparse_v1_docparse_proto_rawDesc), len(file_docparse_v1_docparse_proto_rawDesc)))
	})
	return file_docparse_v1_docparse_proto_rawDescData
}

var file_docparse_v1_docparse_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_docparse_v1_docparse_proto_goTypes = []any{
	(*Position)(nil),               // 0: docparse.v1.Position
	(*Field)(nil),                  // 1: docparse.v1.Field
	(*Stats)(nil),                  // 2: docparse.v1.Stats
	(*LineItem)(nil),               // 3: docparse.v1.LineItem
	(*DocumentAst)(nil),            // 4: docparse.v1.DocumentAst
	(*ParseDocumentRequest)(nil),   // 5: docparse.v1.ParseDocumentRequest
	(*ParseDocumentResponse)(nil),  // 6: docparse.v1.ParseDocumentResponse
	(*ParseRunSummary)(nil),        // 7: docparse.v1.ParseRunSummary
	(*GetParseRunRequest)(nil),     // 8: docparse.v1.GetParseRunRequest
	(*GetParseRunResponse)(nil),    // 9: docparse.v1.GetParseRunResponse
	(*ListParseRunsRequest)(nil),   // 10: docparse.v1.ListParseRunsRequest
	(*ListParseRunsResponse)(nil),  // 11: docparse.v1.ListParseRunsResponse
	(*ExportParseRunRequest)(nil),  // 12: docparse.v1.ExportParseRunRequest
	(*ExportParseRunResponse)(nil), // 13: docparse.v1.ExportParseRunResponse
	nil,                            // 14: docparse.v1.Field.TableDataEntry
	nil,                            // 15: docparse.v1.DocumentAst.ReferenceNumbersEntry
}
var file_docparse_v1_docparse_proto_depIdxs = []int32{
	0,  // 0: docparse.v1.Field.position:type_name -> docparse.v1.Position
	14, // 1: docparse.v1.Field.table_data:type_name -> docparse.v1.Field.TableDataEntry
	15, // 2: docparse.v1.DocumentAst.reference_numbers:type_name -> docparse.v1.DocumentAst.ReferenceNumbersEntry
	3,  // 3: docparse.v1.DocumentAst.items:type_name -> docparse.v1.LineItem
	1,  // 4: docparse.v1.ParseDocumentResponse.fields:type_name -> docparse.v1.Field
	4,  // 5: docparse.v1.ParseDocumentResponse.document_ast:type_name -> docparse.v1.DocumentAst
	2,  // 6: docparse.v1.ParseDocumentResponse.stats:type_name -> docparse.v1.Stats
	7,  // 7: docparse.v1.GetParseRunResponse.run:type_name -> docparse.v1.ParseRunSummary
	7,  // 8: docparse.v1.ListParseRunsResponse.runs:type_name -> docparse.v1.ParseRunSummary
	5,  // 9: docparse.v1.ParseService.ParseDocument:input_type -> docparse.v1.ParseDocumentRequest
	8,  // 10: docparse.v1.ParseService.GetParseRun:input_type -> docparse.v1.GetParseRunRequest
	10, // 11: docparse.v1.ParseService.ListParseRuns:input_type -> docparse.v1.ListParseRunsRequest
	12, // 12: docparse.v1.ParseService.ExportParseRun:input_type -> docparse.v1.ExportParseRunRequest
	6,  // 13: docparse.v1.ParseService.ParseDocument:output_type -> docparse.v1.ParseDocumentResponse
	9,  // 14: docparse.v1.ParseService.GetParseRun:output_type -> docparse.v1.GetParseRunResponse
	11, // 15: docparse.v1.ParseService.ListParseRuns:output_type -> docparse.v1.ListParseRunsResponse
	13, // 16: docparse.v1.ParseService.ExportParseRun:output_type -> docparse.v1.ExportParseRunResponse
	13, // [13:17] is the sub-list for method output_type
	9,  // [9:13] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_docparse_v1_docparse_proto_init() }
func file_docparse_v1_docparse_proto_init() {
	if File_docparse_v1_docparse_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docparse_v1_docparse_proto_rawDesc), len(file_docparse_v1_docparse_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docparse_v1_docparse_proto_goTypes,
		DependencyIndexes: file_docparse_v1_docparse_proto_depIdxs,
		MessageInfos:      file_docparse_v1_docparse_proto_msgTypes,
	}.Build()
	File_docparse_v1_docparse_proto = out.File
	file_docparse_v1_docparse_proto_goTypes = nil
	file_docparse_v1_docparse_proto_depIdxs = nil
}
