package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// UnavailableEndpoint stands in when no real endpoint could be built.
// Every OpenChat fails, so sessions end up Failed and never hit the network.
type UnavailableEndpoint struct {
	cause error
}

func NewUnavailableEndpoint(cause error) *UnavailableEndpoint {
	return &UnavailableEndpoint{cause: cause}
}

func (u *UnavailableEndpoint) OpenChat(context.Context, domain.ChatConfig) (domain.ChatHandle, error) {
	if u.cause == nil {
		return nil, domain.ErrInitialization
	}
	if errors.Is(u.cause, domain.ErrInitialization) {
		return nil, u.cause
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrInitialization, u.cause)
}
