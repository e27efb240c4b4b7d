package carrier

import "errors"

// ErrConflict грузовик с таким номером уже зарегистрирован
var ErrConflict = errors.New("carrier with this plate already exists")
