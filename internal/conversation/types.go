package conversation

// Role tags a history entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultSystemPrompt seeds every new history.
const DefaultSystemPrompt = "You are a helpful and concise AI assistant."

// Entry is one role-tagged line of dialogue. Entries are values and are never
// modified after they are appended.
type Entry struct {
	Role    Role
	Content string
}

// Scope selects how conversation keys map to stores.
type Scope string

const (
	// ScopeGlobal shares one history across every sender.
	ScopeGlobal Scope = "global"
	// ScopeChat keeps one history per chat.
	ScopeChat Scope = "chat"
)

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	Scope        Scope
	SystemPrompt string
	MaxChats     int // LRU bound, ScopeChat only
}

const defaultMaxChats = 1000
