package models

// Tables lists every model migrated at startup, in dependency order
var Tables = []interface{}{
	&User{},
	&Doctor{},
	&Medicine{},
	&Contact{},
	&Booking{},
}
