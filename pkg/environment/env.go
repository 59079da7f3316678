package environment

import "fmt"

type Env int

const (
	Unknown Env = iota
	Development
	Production
)

func FromString(s string) Env {
	switch s {
	case "dev":
		return Development
	case "prod":
		return Production
	default:
		return Unknown
	}
}

func (e Env) String() string {
	switch e {
	case Development:
		return "dev"
	case Production:
		return "prod"
	default:
		return ""
	}
}

// Set makes Env usable as a command line flag value.
func (e *Env) Set(raw string) error {
	env := FromString(raw)
	if env == Unknown {
		return fmt.Errorf("unknown environment %q (dev, prod)", raw)
	}
	*e = env
	return nil
}

func (e *Env) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*e = FromString(raw)
	return nil
}
