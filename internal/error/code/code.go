package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: resource already exists.
	StatusConflict = 409
	// StatusUnprocessable - 422: business rule violated.
	StatusUnprocessable = 422
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500
	ErrUnknown
	// ErrBind - 400: request could not be bound to a query or command.
	ErrBind
	// ErrValidation - 400: query or command failed validation.
	ErrValidation
	// ErrTokenInvalid - 401
	ErrTokenInvalid
	// ErrTooManyRequests - 429
	ErrTooManyRequests
	// ErrForbidden - 403
	ErrForbidden
	// ErrNoHandler - 500: no handler registered for the query or command.
	ErrNoHandler
	// ErrHandlerResult - 500: handler returned an unexpected result type.
	ErrHandlerResult
	// ErrRepository - 500: repository failure.
	ErrRepository
	// ErrSystem - 500: system failure.
	ErrSystem
	// ErrRecordNotFound - 404
	ErrRecordNotFound
	// ErrRecordAlreadyExists - 409
	ErrRecordAlreadyExists
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401
	ErrUserPasswordIncorrect
)

// Letterhead error codes (102xxx).
const (
	// ErrLetterheadNotFound - 404
	ErrLetterheadNotFound int = iota + 102000
	// ErrLetterheadAlreadyExists - 409
	ErrLetterheadAlreadyExists
)

// Address book error codes (103xxx).
const (
	// ErrAddressNotFound - 404
	ErrAddressNotFound int = iota + 103000
	// ErrCompanyNotFound - 404
	ErrCompanyNotFound
	// ErrAddressGroupNotFound - 404
	ErrAddressGroupNotFound
	// ErrAddressGroupAlreadyExists - 409
	ErrAddressGroupAlreadyExists
	// ErrPaymentTermNotFound - 404
	ErrPaymentTermNotFound
	// ErrPaymentTermAlreadyExists - 409
	ErrPaymentTermAlreadyExists
	// ErrPostalCodeNotFound - 404
	ErrPostalCodeNotFound
	// ErrPostalCodeAlreadyExists - 409
	ErrPostalCodeAlreadyExists
)

// Finance error codes (104xxx).
const (
	// ErrAccountingNotFound - 404
	ErrAccountingNotFound int = iota + 104000
	// ErrAccountingAlreadyExists - 409
	ErrAccountingAlreadyExists
	// ErrAccountNotFound - 404
	ErrAccountNotFound
	// ErrAccountAlreadyExists - 409
	ErrAccountAlreadyExists
	// ErrBudgetAccountNotFound - 404
	ErrBudgetAccountNotFound
	// ErrBudgetAccountAlreadyExists - 409
	ErrBudgetAccountAlreadyExists
	// ErrAccountGroupNotFound - 404
	ErrAccountGroupNotFound
	// ErrAccountGroupAlreadyExists - 409
	ErrAccountGroupAlreadyExists
	// ErrBudgetAccountGroupNotFound - 404
	ErrBudgetAccountGroupNotFound
	// ErrBudgetAccountGroupAlreadyExists - 409
	ErrBudgetAccountGroupAlreadyExists
	// ErrPostingDateOutOfRange - 422
	ErrPostingDateOutOfRange
	// ErrPostingAmountInvalid - 422
	ErrPostingAmountInvalid
)

// Calendar error codes (105xxx).
const (
	// ErrCalendarSystemNotFound - 404
	ErrCalendarSystemNotFound int = iota + 105000
	// ErrCalendarUserNotFound - 404
	ErrCalendarUserNotFound
	// ErrAppointmentNotFound - 404
	ErrAppointmentNotFound
	// ErrAppointmentTimeInvalid - 422
	ErrAppointmentTimeInvalid
)

// Food waste error codes (106xxx).
const (
	// ErrHouseholdMemberNotFound - 404
	ErrHouseholdMemberNotFound int = iota + 106000
	// ErrHouseholdMemberAlreadyExists - 409
	ErrHouseholdMemberAlreadyExists
	// ErrHouseholdMemberNotActivated - 403
	ErrHouseholdMemberNotActivated
	// ErrPrivacyPolicyNotAccepted - 403
	ErrPrivacyPolicyNotAccepted
	// ErrWrongActivationCode - 422
	ErrWrongActivationCode
	// ErrMembershipCannotBeDowngraded - 422
	ErrMembershipCannotBeDowngraded
	// ErrHouseholdNotFound - 404
	ErrHouseholdNotFound
	// ErrHouseholdLimitReached - 422
	ErrHouseholdLimitReached
	// ErrNotHouseholdMember - 403
	ErrNotHouseholdMember
	// ErrHouseholdMemberAlreadyInHousehold - 409
	ErrHouseholdMemberAlreadyInHousehold
	// ErrStorageNotFound - 404
	ErrStorageNotFound
	// ErrStorageTypeNotFound - 404
	ErrStorageTypeNotFound
	// ErrStorageOperationNotAllowed - 422
	ErrStorageOperationNotAllowed
	// ErrStorageTemperatureOutOfRange - 422
	ErrStorageTemperatureOutOfRange
	// ErrDataProviderNotFound - 404
	ErrDataProviderNotFound
	// ErrDataProviderDoesNotHandlePayments - 422
	ErrDataProviderDoesNotHandlePayments
	// ErrTranslationInfoNotFound - 404
	ErrTranslationInfoNotFound
	// ErrTranslationNotFound - 404
	ErrTranslationNotFound
	// ErrTranslationAlreadyExists - 409
	ErrTranslationAlreadyExists
	// ErrForeignKeyNotFound - 404
	ErrForeignKeyNotFound
	// ErrForeignKeyAlreadyExists - 409
	ErrForeignKeyAlreadyExists
	// ErrFoodGroupNotFound - 404
	ErrFoodGroupNotFound
	// ErrStaticTextNotFound - 404
	ErrStaticTextNotFound
)

// Database error codes (109xxx).
const (
	// ErrDatabase - 500
	ErrDatabase int = iota + 109000
	// ErrMigrationFailed - 500
	ErrMigrationFailed
	// ErrConnectionFailed - 500
	ErrConnectionFailed
)
