package config

// TransportType defines tool server transport types
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses streamable HTTP
	TransportTypeHTTP TransportType = "http"
)

// IsValid checks if the transport type is valid
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP
}

// SessionKind classifies where a tool server's commands run; the guardian
// receives it with every command validation.
type SessionKind string

const (
	// SessionKindLocal runs commands on the orchestrator host
	SessionKindLocal SessionKind = "local"
	// SessionKindRemote runs commands against remote targets
	SessionKindRemote SessionKind = "remote"
)

// IsValid checks if the session kind is valid
func (k SessionKind) IsValid() bool {
	return k == SessionKindLocal || k == SessionKindRemote
}
