package mailer

import "fmt"

// VerifyTemplate renders the account-activation mail carrying the six-digit
// one-time code.
func VerifyTemplate(code, name string) string {
	return fmt.Sprintf(`
  <html lang="en">
  <body style="padding: 50px 0; margin: 0; background-color: #0f0f0e;">
    <div style="max-width: 600px; background-color: #1d1d1d; font-family: sans-serif; text-align: center; margin: auto;">
      <div style="padding-top: 100px">
        <h3 style="color: #fff; font-size: 24px; margin-bottom: 15px">Dear %s,</h3>
        <p style="font-size: 16px; color: #7f7f80; width: 80%%; margin: 10px auto; line-height: 22px;">
          Please verify that your email address is belong to your account by
          using this verification code below.
        </p>
        <div style="width: 289px; background-color: #fff; border-radius: 10px; margin: 30px auto; font-weight: 800; color: #636b70; font-size: 30px; text-align: center;">
          <p style="text-align: center; width: 100%%;">%s</p>
        </div>
      </div>
      <div style="width: 100%%; padding: 50px 0;">
        <p style="font-size: 14px; color: #636b70">ShareBook Team</p>
      </div>
    </div>
  </body>
  </html>`, name, code)
}

// PasswordResetTemplate renders the recovery mail carrying the one-hour reset
// token the user presents as a bearer credential.
func PasswordResetTemplate(token, name string) string {
	return fmt.Sprintf(`
  <html lang="en">
  <body style="padding: 50px 0; margin: 0; background-color: #0f0f0e;">
    <div style="max-width: 600px; background-color: #1d1d1d; font-family: sans-serif; text-align: center; margin: auto;">
      <div style="padding-top: 100px">
        <h3 style="color: #fff; font-size: 24px; margin-bottom: 15px">Dear %s,</h3>
        <p style="font-size: 16px; color: #7f7f80; width: 80%%; margin: 10px auto; line-height: 22px;">
          You have just requested a password recovery with your email.
          Please use the token below to change your password. Note that the provided token is only valid for 1 hour.
          Copy the token provided below and attach it as the Bearer token in the 'api/user/reset-password' route.
        </p>
        <div style="width: 90%%; background-color: #fff; border-radius: 10px; margin: 30px auto; font-weight: 800; color: #636b70; font-size: 18px; text-align: center; word-break: break-all;">
          <p style="text-align: center; width: 100%%;">%s</p>
        </div>
      </div>
      <div style="width: 100%%; padding: 50px 0;">
        <p style="font-size: 14px; color: #636b70">ShareBook Team</p>
      </div>
    </div>
  </body>
  </html>`, name, token)
}
