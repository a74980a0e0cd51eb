package dto

import "orderprocessing/internal/entities"

func FromOrders(userID int64, orders []*entities.Order) ProcessOrdersResponse {
	response := ProcessOrdersResponse{
		UserID: userID,
		Total:  len(orders),
		Counts: make(map[string]int),
		Orders: make([]*OrderResponse, 0, len(orders)),
	}

	for _, order := range orders {
		response.Counts[order.Status.String()]++
		response.Orders = append(response.Orders, FromOrder(order))
	}
	return response
}

func FromOrder(order *entities.Order) *OrderResponse {
	response := &OrderResponse{
		Type:        order.Type,
		Amount:      order.Amount,
		Flag:        flagValue(order.Flag),
		Status:      order.Status.String(),
		Priority:    order.Priority.String(),
		Notes:       order.Notes,
		ProcessedAt: order.ProcessedAt,
		CompletedAt: order.CompletedAt,
		ExportedAt:  order.ExportedAt,
	}

	if !order.ID.IsAbsent() {
		id := order.ID.String()
		response.ID = &id
	}
	if order.APIResponse != nil {
		response.APIResponse = &APIResponse{Value: order.APIResponse.Value}
	}
	return response
}

// flagValue: null -> null, bool -> bool, сырое значение отдается строкой как есть.
func flagValue(flag entities.Flag) any {
	switch {
	case flag.IsNull():
		return nil
	case flag.IsBool():
		return *flag.Bool()
	default:
		return flag.Raw()
	}
}
