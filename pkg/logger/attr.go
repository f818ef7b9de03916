package logger

import (
	"fmt"
	"log/slog"
)

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records a component identifier under "component".
func Component(id string) slog.Attr {
	return slog.String("component", id)
}

// Property records a validated property under "property".
func Property(p fmt.Stringer) slog.Attr {
	if p == nil {
		return slog.Attr{}
	}
	return slog.String("property", p.String())
}

// Constraint records a constraint kind under "constraint".
func Constraint(kind fmt.Stringer) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("constraint", kind.String())
}

// Resolver records the position of a property resolver in its chain.
func Resolver(index int) slog.Attr {
	return slog.Int("resolver", index)
}
