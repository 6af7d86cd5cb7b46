package membership

import "errors"

// ErrCacheMiss возвращается Store, когда ключ отсутствует
var ErrCacheMiss = errors.New("membership cache: miss")
