package apierrors

// Message keys double as the default English text; fr.toml carries the
// translations.
const (
	MsgInvalidPayload     = "Invalid request payload"
	MsgInvalidCredentials = "Invalid email or password"
	MsgAuthRequired       = "Authentication required"
	MsgFailRegister       = "Failed to register user"
	MsgFailLogin          = "Failed to sign in"
	MsgFailGetProfile     = "Failed to load profile"
	MsgFailChangePassword = "Failed to change password"
	MsgFailCreateTask     = "Failed to create task"
	MsgFailListTasks      = "Failed to list tasks"
	MsgFailUpdateTask     = "Failed to update task"
	MsgFailDeleteTask     = "Failed to delete task"
)
