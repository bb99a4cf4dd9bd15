package i18n

// Generic errors
var (
	ErrorInternal = NewErrorWithCode("ErrorInternal", ErrorInternalServer)
	ErrorDatabase = NewErrorWithCode("ErrorDatabase", ErrorInternalServer)
)

// Authentication errors
var (
	ErrorInvalidCredentials = NewErrorWithCode("ErrorInvalidCredentials", ErrorUnauthorized)
)

// Entity errors
var (
	ErrorUnknownEntity        = NewErrorWithCode("ErrorUnknownEntity", ErrorBadRequest)
	ErrorInvalidID            = NewErrorWithCode("ErrorInvalidID", ErrorBadRequest)
	ErrorRecordNotFound       = NewErrorWithCode("ErrorRecordNotFound", ErrorNotFound)
	ErrorEntityInUse          = NewErrorWithCode("ErrorEntityInUse", ErrorConflict)
	ErrorProductNameRequired  = NewErrorWithCode("ErrorProductNameRequired", ErrorBadRequest)
	ErrorSupplierNameRequired = NewErrorWithCode("ErrorSupplierNameRequired", ErrorBadRequest)
	ErrorProductRequired      = NewErrorWithCode("ErrorProductRequired", ErrorBadRequest)
	ErrorSupplierRequired     = NewErrorWithCode("ErrorSupplierRequired", ErrorBadRequest)
	ErrorDateRequired         = NewErrorWithCode("ErrorDateRequired", ErrorBadRequest)
	ErrorDateInvalid          = NewErrorWithCode("ErrorDateInvalid", ErrorBadRequest)
	ErrorInvalidNumber        = NewErrorWithCode("ErrorInvalidNumber", ErrorBadRequest)
	ErrorInvalidOrderStatus   = NewErrorWithCode("ErrorInvalidOrderStatus", ErrorBadRequest)
)

// Success message IDs
const (
	NoticeLogin = "NoticeLogin"

	SuccessProductCreated  = "SuccessProductCreated"
	SuccessProductUpdated  = "SuccessProductUpdated"
	SuccessSupplierCreated = "SuccessSupplierCreated"
	SuccessSupplierUpdated = "SuccessSupplierUpdated"
	SuccessPurchaseCreated = "SuccessPurchaseCreated"
	SuccessPurchaseUpdated = "SuccessPurchaseUpdated"
	SuccessOrderCreated    = "SuccessOrderCreated"
	SuccessOrderUpdated    = "SuccessOrderUpdated"
	SuccessRecordDeleted   = "SuccessRecordDeleted"
)
