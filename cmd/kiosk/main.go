// Command kiosk runs the registration wizard on a terminal. It is the
// on-site counterpart of the web form: same steps, same validation,
// same submission payload.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/innovatec/registration-api/internal/apiclient"
	"github.com/innovatec/registration-api/internal/notification"
	"github.com/innovatec/registration-api/internal/upload"
	"github.com/innovatec/registration-api/internal/wizard"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	baseURL := os.Getenv("REGISTRATION_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}

	client := apiclient.New(baseURL, nil)
	notifier := notification.NewLogNotifier(log)

	k := &kiosk{
		wizard:   wizard.New(client),
		notifier: notifier,
		in:       bufio.NewScanner(os.Stdin),
	}
	k.run(context.Background())
}

type kiosk struct {
	wizard   *wizard.Wizard
	notifier notification.Notifier
	in       *bufio.Scanner
}

func (k *kiosk) run(ctx context.Context) {
	for {
		w := k.wizard
		fmt.Printf("\n== %s ==\n", w.Step())

		switch w.Step() {
		case wizard.StepTypeSelection:
			k.askField(wizard.FieldParticipantType, "Participant type [E=student C=faculty I=guest]")
		case wizard.StepPersonalInfo:
			k.askField(wizard.FieldFullName, "Full name")
			k.askField(wizard.FieldEmail, "Email")
			k.askField(wizard.FieldPhone, "Phone")
			k.askField(wizard.FieldBirthDate, "Birth date [YYYY-MM-DD]")
			k.askField(wizard.FieldShirtSize, "Shirt size [S M L XL]")
			k.askField(wizard.FieldPaymentMethod, "Payment method [E=cash C=bank transfer]")
			if w.Draft().PaymentMethod == "C" {
				k.askProof()
			}
			if w.Draft().ParticipantType == "E" {
				k.askField(wizard.FieldProgramCode, "Carnet program code")
				k.askField(wizard.FieldAdmissionYear, "Carnet admission year")
				k.askField(wizard.FieldSequenceNumber, "Carnet sequence number")
			}
		case wizard.StepInstitutionalInfo:
			k.askField(wizard.FieldInstitution, "Institution (optional)")
			k.askField(wizard.FieldRole, "Role (optional)")
		case wizard.StepConfirmation:
			fmt.Printf("Name:    %s\n", w.Draft().FullName)
			fmt.Printf("Email:   %s\n", w.Draft().Email)
			fmt.Printf("Carnet:  %s\n", w.FormattedCarnet())
			k.askAcceptTerms()
			if k.submit(ctx) {
				continue
			}
			k.prompt("Press enter to go back and fix, or type quit")
			continue
		case wizard.StepSubmitted:
			fmt.Printf("Registered! A confirmation was sent to %s.\n", w.SubmittedEmail())
			if k.prompt("Register another participant? [y/N]") != "y" {
				return
			}
			w.Reset()
			continue
		}

		w.Advance()
		k.printErrors()
	}
}

func (k *kiosk) askField(name, label string) {
	answer := k.prompt(label)
	if answer == "" {
		return
	}
	if err := k.wizard.UpdateField(name, answer); err != nil {
		fmt.Println(err)
	}
}

func (k *kiosk) askProof() {
	path := k.prompt("Payment proof file path")
	if path == "" {
		return
	}

	encoded, err := upload.EncodeFile(path)
	if err != nil {
		k.notifier.Error("Upload failed", err.Error())
		return
	}

	if err = k.wizard.UpdateField(wizard.FieldPaymentProof, encoded); err != nil {
		fmt.Println(err)
	}
}

func (k *kiosk) askAcceptTerms() {
	accepted := k.prompt("Accept the terms and conditions? [y/N]") == "y"
	if err := k.wizard.UpdateField(wizard.FieldAcceptedTerms, accepted); err != nil {
		fmt.Println(err)
	}
}

func (k *kiosk) submit(ctx context.Context) bool {
	err := k.wizard.Submit(ctx)
	if err == nil {
		k.notifier.Success("Registration complete", k.wizard.SubmittedEmail())
		return true
	}

	if errors.Is(err, wizard.ErrDraftInvalid) {
		k.printErrors()
		return false
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		k.notifier.Error("Registration failed", apiErr.Message)
		return false
	}

	k.notifier.Error("Registration failed", err.Error())
	return false
}

func (k *kiosk) printErrors() {
	for field, message := range k.wizard.Errors() {
		fmt.Printf("  ! %s: %s\n", field, message)
	}
}

func (k *kiosk) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !k.in.Scan() {
		os.Exit(0)
	}

	answer := strings.TrimSpace(k.in.Text())
	if answer == "quit" {
		os.Exit(0)
	}

	return answer
}
