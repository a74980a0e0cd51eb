package entities

type flagKind uint8

const (
	flagNull flagKind = iota
	flagBool
	flagRaw
)

// Flag - признак заказа с тремя состояниями: null, bool, либо сырое небулево значение,
// пришедшее из нетипизированного источника (например, из json).
type Flag struct {
	kind  flagKind
	value bool
	raw   string
}

func NullFlag() Flag {
	return Flag{}
}

func BoolFlag(v bool) Flag {
	return Flag{kind: flagBool, value: v}
}

func RawFlag(raw string) Flag {
	return Flag{kind: flagRaw, raw: raw}
}

func (f Flag) IsNull() bool {
	return f.kind == flagNull
}

func (f Flag) IsBool() bool {
	return f.kind == flagBool
}

// IsTrue - строгая проверка: только булево true.
func (f Flag) IsTrue() bool {
	return f.kind == flagBool && f.value
}

// Truthy - нестрогая истинность, нужна только для выгрузки в CSV.
// Сырое значение истинно, если оно не пустое и не "0".
func (f Flag) Truthy() bool {
	switch f.kind {
	case flagBool:
		return f.value
	case flagRaw:
		return f.raw != "" && f.raw != "0"
	default:
		return false
	}
}

// Bool возвращает значение для хранения: nil для null и сырых значений.
func (f Flag) Bool() *bool {
	if f.kind != flagBool {
		return nil
	}
	v := f.value
	return &v
}

func (f Flag) Raw() string {
	return f.raw
}
