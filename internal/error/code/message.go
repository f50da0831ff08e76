package code

// Language selects the message table.
type Language string

const (
	Danish  Language = "da"
	English Language = "en"
)

type message struct {
	da string
	en string
}

// 错误码消息映射
var codeMessageMap = map[int]message{
	// General
	ErrSuccess:             {"OK", "OK"},
	ErrUnknown:             {"Ukendt fejl", "Unknown error"},
	ErrBind:                {"Forespørgslen kunne ikke læses", "The request could not be read"},
	ErrValidation:          {"Forespørgslen er ugyldig", "The request is invalid"},
	ErrTokenInvalid:        {"Ugyldig adgangsnøgle", "Invalid access token"},
	ErrTooManyRequests:     {"For mange forespørgsler", "Too many requests"},
	ErrForbidden:           {"Adgang nægtet", "Access denied"},
	ErrNoHandler:           {"Der findes ingen behandler til forespørgslen", "No handler is registered for the request"},
	ErrHandlerResult:       {"Behandleren returnerede et uventet resultat", "The handler returned an unexpected result"},
	ErrRepository:          {"Fejl ved adgang til data", "Data access failed"},
	ErrSystem:              {"Systemfejl", "System error"},
	ErrRecordNotFound:      {"Posten blev ikke fundet", "Record not found"},
	ErrRecordAlreadyExists: {"Posten findes allerede", "Record already exists"},

	// Users
	ErrUserNotFound:          {"Brugeren findes ikke", "User not found"},
	ErrUserAlreadyExist:      {"Brugeren findes allerede", "User already exists"},
	ErrUserPasswordIncorrect: {"Forkert brugernavn eller adgangskode", "Wrong user name or password"},

	// Letterheads
	ErrLetterheadNotFound:      {"Brevhovedet findes ikke", "Letterhead not found"},
	ErrLetterheadAlreadyExists: {"Brevhovedet findes allerede", "Letterhead already exists"},

	// Address book
	ErrAddressNotFound:           {"Adressen findes ikke", "Address not found"},
	ErrCompanyNotFound:           {"Firmaet findes ikke", "Company not found"},
	ErrAddressGroupNotFound:      {"Adressegruppen findes ikke", "Address group not found"},
	ErrAddressGroupAlreadyExists: {"Adressegruppen findes allerede", "Address group already exists"},
	ErrPaymentTermNotFound:       {"Betalingsbetingelsen findes ikke", "Payment term not found"},
	ErrPaymentTermAlreadyExists:  {"Betalingsbetingelsen findes allerede", "Payment term already exists"},
	ErrPostalCodeNotFound:        {"Postnummeret findes ikke", "Postal code not found"},
	ErrPostalCodeAlreadyExists:   {"Postnummeret findes allerede", "Postal code already exists"},

	// Finance
	ErrAccountingNotFound:              {"Regnskabet findes ikke", "Accounting not found"},
	ErrAccountingAlreadyExists:         {"Regnskabet findes allerede", "Accounting already exists"},
	ErrAccountNotFound:                 {"Kontoen findes ikke", "Account not found"},
	ErrAccountAlreadyExists:            {"Kontoen findes allerede", "Account already exists"},
	ErrBudgetAccountNotFound:           {"Budgetkontoen findes ikke", "Budget account not found"},
	ErrBudgetAccountAlreadyExists:      {"Budgetkontoen findes allerede", "Budget account already exists"},
	ErrAccountGroupNotFound:            {"Kontogruppen findes ikke", "Account group not found"},
	ErrAccountGroupAlreadyExists:       {"Kontogruppen findes allerede", "Account group already exists"},
	ErrBudgetAccountGroupNotFound:      {"Budgetkontogruppen findes ikke", "Budget account group not found"},
	ErrBudgetAccountGroupAlreadyExists: {"Budgetkontogruppen findes allerede", "Budget account group already exists"},
	ErrPostingDateOutOfRange:           {"Bogføringsdatoen er uden for det tilladte interval", "The posting date is outside the allowed range"},
	ErrPostingAmountInvalid:            {"Debet og kredit skal være positive og må ikke begge være nul", "Debit and credit must be positive and cannot both be zero"},

	// Calendar
	ErrCalendarSystemNotFound: {"Systemet findes ikke", "System not found"},
	ErrCalendarUserNotFound:   {"Kalenderbrugeren findes ikke", "Calendar user not found"},
	ErrAppointmentNotFound:    {"Aftalen findes ikke", "Appointment not found"},
	ErrAppointmentTimeInvalid: {"Aftalens tidsrum er ugyldigt", "The appointment time span is invalid"},

	// Food waste
	ErrHouseholdMemberNotFound:           {"Husstandsmedlemmet findes ikke", "Household member not found"},
	ErrHouseholdMemberAlreadyExists:      {"Husstandsmedlemmet findes allerede", "Household member already exists"},
	ErrHouseholdMemberNotActivated:       {"Husstandsmedlemmet er ikke aktiveret", "The household member has not been activated"},
	ErrPrivacyPolicyNotAccepted:          {"Privatlivspolitikken er ikke accepteret", "The privacy policy has not been accepted"},
	ErrWrongActivationCode:               {"Forkert aktiveringskode", "Wrong activation code"},
	ErrMembershipCannotBeDowngraded:      {"Medlemskabet kan ikke nedgraderes", "The membership cannot be downgraded"},
	ErrHouseholdNotFound:                 {"Husstanden findes ikke", "Household not found"},
	ErrHouseholdLimitReached:             {"Medlemskabet tillader ikke flere husstande", "The membership does not allow more households"},
	ErrNotHouseholdMember:                {"Du er ikke medlem af husstanden", "You are not a member of the household"},
	ErrHouseholdMemberAlreadyInHousehold: {"Husstandsmedlemmet er allerede medlem af husstanden", "The household member is already a member of the household"},
	ErrStorageNotFound:                   {"Opbevaringen findes ikke", "Storage not found"},
	ErrStorageTypeNotFound:               {"Opbevaringstypen findes ikke", "Storage type not found"},
	ErrStorageOperationNotAllowed:        {"Opbevaringstypen tillader ikke handlingen", "The storage type does not allow the operation"},
	ErrStorageTemperatureOutOfRange:      {"Temperaturen er uden for opbevaringstypens interval", "The temperature is outside the storage type range"},
	ErrDataProviderNotFound:              {"Dataleverandøren findes ikke", "Data provider not found"},
	ErrDataProviderDoesNotHandlePayments: {"Dataleverandøren håndterer ikke betalinger", "The data provider does not handle payments"},
	ErrTranslationInfoNotFound:           {"Oversættelsesinformationen findes ikke", "Translation info not found"},
	ErrTranslationNotFound:               {"Oversættelsen findes ikke", "Translation not found"},
	ErrTranslationAlreadyExists:          {"Oversættelsen findes allerede", "Translation already exists"},
	ErrForeignKeyNotFound:                {"Fremmednøglen findes ikke", "Foreign key not found"},
	ErrForeignKeyAlreadyExists:           {"Fremmednøglen findes allerede", "Foreign key already exists"},
	ErrFoodGroupNotFound:                 {"Fødevaregruppen findes ikke", "Food group not found"},
	ErrStaticTextNotFound:                {"Teksten findes ikke", "Static text not found"},

	// Database
	ErrDatabase:         {"Databasefejl", "Database error"},
	ErrMigrationFailed:  {"Migrering mislykkedes", "Migration failed"},
	ErrConnectionFailed: {"Forbindelsen mislykkedes", "Connection failed"},
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	ErrSuccess:             StatusOK,
	ErrUnknown:             StatusInternalServerError,
	ErrBind:                StatusBadRequest,
	ErrValidation:          StatusBadRequest,
	ErrTokenInvalid:        StatusUnauthorized,
	ErrTooManyRequests:     StatusTooManyRequests,
	ErrForbidden:           StatusForbidden,
	ErrNoHandler:           StatusInternalServerError,
	ErrHandlerResult:       StatusInternalServerError,
	ErrRepository:          StatusInternalServerError,
	ErrSystem:              StatusInternalServerError,
	ErrRecordNotFound:      StatusNotFound,
	ErrRecordAlreadyExists: StatusConflict,

	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	ErrLetterheadNotFound:      StatusNotFound,
	ErrLetterheadAlreadyExists: StatusConflict,

	ErrAddressNotFound:           StatusNotFound,
	ErrCompanyNotFound:           StatusNotFound,
	ErrAddressGroupNotFound:      StatusNotFound,
	ErrAddressGroupAlreadyExists: StatusConflict,
	ErrPaymentTermNotFound:       StatusNotFound,
	ErrPaymentTermAlreadyExists:  StatusConflict,
	ErrPostalCodeNotFound:        StatusNotFound,
	ErrPostalCodeAlreadyExists:   StatusConflict,

	ErrAccountingNotFound:              StatusNotFound,
	ErrAccountingAlreadyExists:         StatusConflict,
	ErrAccountNotFound:                 StatusNotFound,
	ErrAccountAlreadyExists:            StatusConflict,
	ErrBudgetAccountNotFound:           StatusNotFound,
	ErrBudgetAccountAlreadyExists:      StatusConflict,
	ErrAccountGroupNotFound:            StatusNotFound,
	ErrAccountGroupAlreadyExists:       StatusConflict,
	ErrBudgetAccountGroupNotFound:      StatusNotFound,
	ErrBudgetAccountGroupAlreadyExists: StatusConflict,
	ErrPostingDateOutOfRange:           StatusUnprocessable,
	ErrPostingAmountInvalid:            StatusUnprocessable,

	ErrCalendarSystemNotFound: StatusNotFound,
	ErrCalendarUserNotFound:   StatusNotFound,
	ErrAppointmentNotFound:    StatusNotFound,
	ErrAppointmentTimeInvalid: StatusUnprocessable,

	ErrHouseholdMemberNotFound:           StatusNotFound,
	ErrHouseholdMemberAlreadyExists:      StatusConflict,
	ErrHouseholdMemberNotActivated:       StatusForbidden,
	ErrPrivacyPolicyNotAccepted:          StatusForbidden,
	ErrWrongActivationCode:               StatusUnprocessable,
	ErrMembershipCannotBeDowngraded:      StatusUnprocessable,
	ErrHouseholdNotFound:                 StatusNotFound,
	ErrHouseholdLimitReached:             StatusUnprocessable,
	ErrNotHouseholdMember:                StatusForbidden,
	ErrHouseholdMemberAlreadyInHousehold: StatusConflict,
	ErrStorageNotFound:                   StatusNotFound,
	ErrStorageTypeNotFound:               StatusNotFound,
	ErrStorageOperationNotAllowed:        StatusUnprocessable,
	ErrStorageTemperatureOutOfRange:      StatusUnprocessable,
	ErrDataProviderNotFound:              StatusNotFound,
	ErrDataProviderDoesNotHandlePayments: StatusUnprocessable,
	ErrTranslationInfoNotFound:           StatusNotFound,
	ErrTranslationNotFound:               StatusNotFound,
	ErrTranslationAlreadyExists:          StatusConflict,
	ErrForeignKeyNotFound:                StatusNotFound,
	ErrForeignKeyAlreadyExists:           StatusConflict,
	ErrFoodGroupNotFound:                 StatusNotFound,
	ErrStaticTextNotFound:                StatusNotFound,

	ErrDatabase:         StatusInternalServerError,
	ErrMigrationFailed:  StatusInternalServerError,
	ErrConnectionFailed: StatusInternalServerError,
}

// GetMessage returns the Danish message of an error code
func GetMessage(code int) string {
	return GetLocalizedMessage(Danish, code)
}

// GetLocalizedMessage returns the message of an error code in the given language
func GetLocalizedMessage(lang Language, code int) string {
	msg, ok := codeMessageMap[code]
	if !ok {
		msg = codeMessageMap[ErrUnknown]
	}
	if lang == English {
		return msg.en
	}
	return msg.da
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}

// Known reports whether the code has a message.
func Known(code int) bool {
	_, ok := codeMessageMap[code]
	return ok
}
