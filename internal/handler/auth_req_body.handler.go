package handler

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleAuthRequest struct {
	Code string `json:"code"`
}

type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeleteNotesRequest struct {
	NoteIDs []string `json:"noteIds"`
}
