package common

type Kind string

const (
	Allowlist Kind = "merkle_allowlist"
	Soulbound Kind = "soulbound_credential"
)

type Credentials interface {
	Kind() Kind
}
