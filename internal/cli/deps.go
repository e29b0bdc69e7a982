package cli

import (
	"errors"
	"io"
	"os"

	"github.com/xolan/diary/internal/service"
)

// ErrNoServices is returned by LoadServices when Deps has neither services nor a factory
var ErrNoServices = errors.New("no services configured")

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is opened on first use through NewServices unless set directly
	Services    *service.Services
	NewServices func() (*service.Services, error)
}

// DefaultDeps creates a new Deps with default values.
// Storage is not opened until a command needs it.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		NewServices: service.NewServices,
	}
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	d := DefaultDeps()
	d.Services = services
	return d
}

// LoadServices returns the services, opening them on first call.
func (d *Deps) LoadServices() (*service.Services, error) {
	if d.Services != nil {
		return d.Services, nil
	}
	if d.NewServices == nil {
		return nil, ErrNoServices
	}
	s, err := d.NewServices()
	if err != nil {
		return nil, err
	}
	d.Services = s
	return s, nil
}

// Close releases the services if they were opened
func (d *Deps) Close() error {
	if d.Services == nil {
		return nil
	}
	err := d.Services.Close()
	d.Services = nil
	return err
}
