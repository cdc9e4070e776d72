package providers

import (
	"errors"
	"fmt"
	"net/url"

	"cpd/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs the struct tag rules first, then the cross-field rules
// tags cannot express.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	switch cv.conf.Store.Driver {
	case structures.StoreDriverFile:
		if cv.conf.Store.Dir == "" {
			return errors.New("store.dir is required for the file driver")
		}
	case structures.StoreDriverRedis:
		if cv.conf.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr is required for the redis driver")
		}
	}

	if cv.conf.Library.RetainItems > 0 && cv.conf.Library.MaxItems > 0 &&
		cv.conf.Library.RetainItems > cv.conf.Library.MaxItems {
		return fmt.Errorf("library.retainItems (%d) exceeds library.maxItems (%d)",
			cv.conf.Library.RetainItems, cv.conf.Library.MaxItems)
	}

	for i, ref := range cv.conf.Publication.ReferencePool {
		u, err := url.Parse(ref)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("publication.referencePool[%d] is not an absolute URI: %q", i, ref)
		}
	}
	return nil
}
