package email

import "fmt"

const otpSubject = "Verify your email - Notes App"

// otpBodyHTML renders the verification mail. Kept as a plain format string;
// the payload is a single code, not worth a template engine.
func otpBodyHTML(code string, expiryMinutes int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #4F46E5; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
  .otp { font-size: 32px; font-weight: bold; color: #4F46E5; text-align: center; margin: 20px 0; letter-spacing: 8px; }
  .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Notes App</h1></div>
  <div class="content">
    <h2>Verify Your Email Address</h2>
    <p>Hello!</p>
    <p>Thank you for signing up with Notes App. To complete your registration, please use the following OTP:</p>
    <div class="otp">%s</div>
    <p>This OTP will expire in %d minutes for security reasons.</p>
    <p>If you didn't create an account with us, please ignore this email.</p>
  </div>
  <div class="footer"><p>&copy; 2025 Notes App. All rights reserved.</p></div>
</div>
</body>
</html>`, code, expiryMinutes)
}
