package apierrors

const (
	MsgUnauthenticated        = "unauthenticated"
	MsgInvalidCredentials     = "invalidCredentials"
	MsgRegisterFieldsRequired = "registerFieldsRequired"
	MsgLoginFieldsRequired    = "loginFieldsRequired"
	MsgDuplicateUser          = "duplicateUser"
	MsgUserNotFound           = "userNotFound"
	MsgFailRegister           = "failRegister"
	MsgFailLogin              = "failLogin"
	MsgFailFetchUser          = "failFetchUser"

	MsgInvalidID          = "invalidID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailFetchTask      = "failFetchTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgCategoryNameRequired = "categoryNameRequired"
	MsgDuplicateCategory    = "duplicateCategory"
	MsgCategoryNotFound     = "categoryNotFound"
	MsgFailCreateCategory   = "failCreateCategory"
	MsgFailListCategories   = "failListCategories"
	MsgFailFetchCategory    = "failFetchCategory"
	MsgFailUpdateCategory   = "failUpdateCategory"
	MsgFailDeleteCategory   = "failDeleteCategory"

	MsgFailFetchStats = "failFetchStats"
)
