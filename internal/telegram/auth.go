package telegram

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"tgbackup/internal/domain"
)

var (
	stdinOnce   sync.Once
	stdinReader *bufio.Reader
)

// TerminalPrompt reads one line from stdin. It is the default PromptFunc for
// interactive runs.
func TerminalPrompt(_ context.Context, prompt string) (string, error) {
	stdinOnce.Do(func() { stdinReader = bufio.NewReader(os.Stdin) })
	fmt.Print(prompt)
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Authenticator drives the interactive login flow. The prompt is pluggable so
// batch environments can supply codes programmatically.
type Authenticator struct {
	phone  string
	prompt domain.PromptFunc
}

// NewAuthenticator returns an Authenticator. phone may be empty, in which
// case it is prompted for on first login.
func NewAuthenticator(phone string, prompt domain.PromptFunc) *Authenticator {
	return &Authenticator{phone: phone, prompt: prompt}
}

func (a *Authenticator) Phone(ctx context.Context) (string, error) {
	if a.phone != "" {
		return a.phone, nil
	}
	return a.prompt(ctx, "Phone number (international format): ")
}

func (a *Authenticator) Code(ctx context.Context, _ *tg.AuthSentCode) (string, error) {
	return a.prompt(ctx, "Verification code: ")
}

func (a *Authenticator) Password(ctx context.Context) (string, error) {
	return a.prompt(ctx, "Two-factor password: ")
}

func (a *Authenticator) AcceptTermsOfService(_ context.Context, _ tg.HelpTermsOfService) error {
	return nil
}

// SignUp rejects unregistered accounts; this tool backs up existing ones.
func (a *Authenticator) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, domain.ErrSignUpRequired
}
