package interfaces

// StoreInterface is a durable bucket -> document store. Read returns nil
// data and a nil error for a bucket that was never written. Write replaces
// the whole document.
type StoreInterface interface {
	Read(bucket string) ([]byte, error)
	Write(bucket string, data []byte) error
	Close() error
}
