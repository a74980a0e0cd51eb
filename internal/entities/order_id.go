package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalNumber - десятичная запись с необязательными знаком, дробной частью и экспонентой.
// NaN, Inf и шестнадцатеричные формы числами не считаются.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

type orderIDKind uint8

const (
	orderIDAbsent orderIDKind = iota
	orderIDNumeric
	orderIDString
)

// OrderID - идентификатор заказа: число, строка или отсутствует.
type OrderID struct {
	kind orderIDKind
	num  int64
	str  string
}

func NumericOrderID(id int64) OrderID {
	return OrderID{kind: orderIDNumeric, num: id}
}

func StringOrderID(id string) OrderID {
	return OrderID{kind: orderIDString, str: id}
}

func AbsentOrderID() OrderID {
	return OrderID{}
}

func (id OrderID) IsAbsent() bool {
	return id.kind == orderIDAbsent
}

// Numeric возвращает числовое значение идентификатора, если он приводим к числу.
// Строка считается числовой, если это конечное десятичное число ("12", " 7.5", "1e3").
func (id OrderID) Numeric() (float64, bool) {
	switch id.kind {
	case orderIDNumeric:
		return float64(id.num), true
	case orderIDString:
		return parseNumeric(id.str)
	default:
		return 0, false
	}
}

func (id OrderID) String() string {
	switch id.kind {
	case orderIDNumeric:
		return strconv.FormatInt(id.num, 10)
	case orderIDString:
		return id.str
	default:
		return ""
	}
}

func parseNumeric(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if !decimalNumber.MatchString(trimmed) {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return finite(v)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
