package cache

// KV is the minimal durable key-value contract the persistent cache tier
// needs. Implementations must be safe for concurrent use by multiple
// goroutines. Get reports a plain miss through its second return value;
// the error return is reserved for storage faults.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
	RemoveMany(keys []string) error
}
