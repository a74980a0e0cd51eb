package entities

import "encoding/json"

const APIResponseSuccess = "success"

// APIResponse - ответ сервиса вычислений. Data может быть чем угодно, включая nil.
type APIResponse struct {
	Status string
	Data   any
}

func (r *APIResponse) IsSuccess() bool {
	return r != nil && r.Status == APIResponseSuccess
}

// NumericData возвращает Data как число, если это число или числовая строка.
func (r *APIResponse) NumericData() (float64, bool) {
	if r == nil {
		return 0, false
	}
	switch v := r.Data.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		return parseNumeric(v.String())
	case string:
		return parseNumeric(v)
	default:
		return 0, false
	}
}

// APIResponseValue - то, что сохраняется в заказе после успешной проверки ответа.
type APIResponseValue struct {
	Value float64 `json:"value"`
}
