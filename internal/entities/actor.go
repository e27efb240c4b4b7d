package entities

type Role string

const (
	RoleShipper Role = "shipper"
	RoleCarrier Role = "carrier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleShipper, RoleCarrier, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor тот, от чьего имени выполняется операция. Для роли carrier ID совпадает
// с ID перевозчика, для shipper это ID отправителя во внешней системе.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) Is(role Role, id int64) bool {
	return a.Role == role && a.ID == id
}
