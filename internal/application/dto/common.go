package dto

// APIResponse es el envelope de toda respuesta HTTP, incluidas las de error:
// {success, message, data}. El frontend AgriCore depende de esta forma.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
