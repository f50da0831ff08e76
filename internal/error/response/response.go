package response

import (
	"encoding/xml"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/text/language"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/pkg/logger"
)

// Response 定义统一的响应格式
type Response struct {
	XMLName xml.Name    `json:"-" xml:"response"`
	Code    int         `json:"code" xml:"code"`
	Message string      `json:"message" xml:"message"`
	Data    interface{} `json:"data,omitempty" xml:"data,omitempty"`
}

// FaultData describes a fault in the data field of the envelope.
type FaultData struct {
	Kind string `json:"kind" xml:"kind"`
}

var (
	offered = []string{binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2}
	matcher = language.NewMatcher([]language.Tag{language.Danish, language.English})
)

// Language picks the message language from the Accept-Language header.
// Danish is used unless the client prefers English.
func Language(c *gin.Context) code.Language {
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return code.Danish
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return code.Danish
	}
	return code.English
}

// write renders XML when the client asks for it and JSON otherwise.
func write(c *gin.Context, status int, body Response) {
	switch c.NegotiateFormat(offered...) {
	case binding.MIMEXML, binding.MIMEXML2:
		c.XML(status, body)
	default:
		c.JSON(status, body)
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, code.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetLocalizedMessage(Language(c), code.ErrSuccess),
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int, data interface{}) {
	write(c, code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: code.GetLocalizedMessage(Language(c), errorCode),
		Data:    data,
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	write(c, code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// Fault translates err into the error envelope. Business errors keep their own
// code; repository and system errors are reported with a generic code so
// internals do not leak to the client.
func Fault(c *gin.Context, err error) {
	fault := intranet.Classify(err)
	lang := Language(c)

	errorCode := fault.Code
	message := fault.Message(lang)
	switch fault.Kind() {
	case intranet.KindRepository:
		logger.With("path", c.FullPath(), "error", err).Error("repository fault")
		errorCode = code.ErrRepository
		message = code.GetLocalizedMessage(lang, errorCode)
	case intranet.KindSystem:
		logger.With("path", c.FullPath(), "error", err).Error("system fault")
		if !code.Known(errorCode) {
			errorCode = code.ErrSystem
		}
		message = code.GetLocalizedMessage(lang, errorCode)
	default:
		logger.With("path", c.FullPath(), "code", fault.Code).Debug(fault.Error())
	}

	write(c, code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    FaultData{Kind: fault.Kind().String()},
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, err error) {
	message := code.GetLocalizedMessage(Language(c), code.ErrBind)
	if err != nil {
		message += ": " + err.Error()
	}
	FailWithMessage(c, code.ErrBind, message, nil)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

// Forbidden 禁止访问响应
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrForbidden, nil)
}
