package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authusecase "github.com/saylanihub/zakatms/services/auth/usecase"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPhone    string
	registerPassword string
	registerConfirm  string

	resetEmail       string
	resetOTP         string
	resetNewPassword string
	resetConfirm     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Zakat account",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := authusecase.NewLoginScreen(app.auth, app.session)
		state := screen.Submit(cmd.Context(), loginEmail, loginPassword)
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		user := app.session.User()
		fmt.Printf("Welcome back, %s! Next stop: %s\n", user.Name, state.RedirectTo)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.session.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a donor account",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := authusecase.NewRegisterScreen(app.auth, app.session)
		state := screen.Submit(cmd.Context(), authusecase.RegisterForm{
			Name:            registerName,
			Email:           registerEmail,
			Phone:           registerPhone,
			Password:        registerPassword,
			ConfirmPassword: registerConfirm,
		})
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Printf("Account created. You are signed in; see %s\n", state.RedirectTo)
		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset OTP by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := authusecase.NewForgotPasswordScreen(app.auth)
		state := screen.Submit(cmd.Context(), resetEmail)
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		fmt.Printf("OTP sent to %s. Use: zakatms reset-password --email %s --otp <code>\n", state.Email, state.Email)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using the emailed OTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := authusecase.NewResetPasswordScreen(app.auth)
		state := screen.Submit(cmd.Context(), authusecase.ResetPasswordForm{
			Email:           resetEmail,
			OTP:             resetOTP,
			NewPassword:     resetNewPassword,
			ConfirmPassword: resetConfirm,
		})
		if state.Error != "" {
			return fmt.Errorf("%s", state.Error)
		}
		if state.RedirectTo == "/forgot-password" {
			return fmt.Errorf("request an OTP first: zakatms forgot-password --email <you>")
		}
		fmt.Println("Password reset successful. Please sign in again.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password (min 6 characters)")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm-password", "", "repeat the password")

	forgotPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "account email")
	forgotPasswordCmd.MarkFlagRequired("email")

	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "account email")
	resetPasswordCmd.Flags().StringVar(&resetOTP, "otp", "", "OTP from the reset email")
	resetPasswordCmd.Flags().StringVar(&resetNewPassword, "new-password", "", "new password (min 6 characters)")
	resetPasswordCmd.Flags().StringVar(&resetConfirm, "confirm-password", "", "repeat the new password")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, forgotPasswordCmd, resetPasswordCmd)
}
