package dto

// RespuestaOK cuerpo de éxito estándar: {success, message, id?}.
type RespuestaOK struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// RespuestaError cuerpo de error estándar: {success:false, error}.
type RespuestaError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error construye el cuerpo de error con el mensaje dado.
func Error(mensaje string) RespuestaError {
	return RespuestaError{Success: false, Error: mensaje}
}

// OK construye el cuerpo de éxito con un mensaje.
func OK(mensaje string) RespuestaOK {
	return RespuestaOK{Success: true, Message: mensaje}
}
