package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 装载错误：SCHEMA_INVALID（记录缺字段/主键冲突，当次 Load 失败，旧快照保留）
//   - 排名错误：EMPTY_DATASET（过滤后无记录，可恢复，由调用方展示“无结果”）
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "SCHEMA_INVALID", "EMPTY_DATASET"）
	Message string // 错误消息
	Module  string // 模块名称（如 "dataset", "rank", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeSchemaInvalid = "SCHEMA_INVALID" // 装载记录不符合 schema 或主键冲突
	ErrorCodeEmptyDataset  = "EMPTY_DATASET"  // 对空集合请求排名
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleDataset = "dataset" // 数据集/关系存储模块
	ModuleRank    = "rank"    // 打分排序模块
	ModuleQuery   = "query"   // 查询门面模块
	ModuleStore   = "store"   // KV 存储模块
	ModuleSource  = "source"  // 数据装载边界模块
)

// ErrEmptyDataset 表示过滤后的视图为空，排名无从计算。
// 属于可恢复错误：调用方应展示“无匹配社区”，而不是崩溃。
var ErrEmptyDataset = NewDomainError(ModuleRank, ErrorCodeEmptyDataset, "rank: empty dataset")

// NewSchemaError 创建一个 SCHEMA_INVALID 装载错误。
// 当次 Load 整体失败，已有快照不受影响。
func NewSchemaError(message string) *DomainError {
	return NewDomainError(ModuleDataset, ErrorCodeSchemaInvalid, message)
}

// IsSchemaError 检查错误是否为装载 schema 错误
func IsSchemaError(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeSchemaInvalid
	}
	return false
}

// IsEmptyDataset 检查错误是否为空数据集错误
func IsEmptyDataset(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeEmptyDataset
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidInput
	}
	return false
}
