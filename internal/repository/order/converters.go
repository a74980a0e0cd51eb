package order

import (
	"strconv"

	"orderprocessing/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:       OrderIDFromDB(o.ID),
		UserID:   o.UserID,
		Type:     o.Type,
		Amount:   o.Amount,
		Flag:     FlagFromDB(o.Flag),
		Status:   entities.OrderStatusType(o.Status),
		Priority: entities.OrderPriorityType(o.Priority),
		Notes:    o.Notes,
	}
}

func ToDomainList(models []OrderDB) []*entities.Order {
	orders := make([]*entities.Order, 0, len(models))
	for i := range models {
		orders = append(orders, ToDomain(&models[i]))
	}
	return orders
}

// OrderIDFromDB: целые идентификаторы становятся числовыми, остальные остаются строками.
func OrderIDFromDB(id string) entities.OrderID {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return entities.NumericOrderID(n)
	}
	return entities.StringOrderID(id)
}

// FlagFromDB: колонка текстовая, чтобы хранить небулевы значения из внешних источников.
func FlagFromDB(flag *string) entities.Flag {
	if flag == nil {
		return entities.NullFlag()
	}
	switch *flag {
	case "true":
		return entities.BoolFlag(true)
	case "false":
		return entities.BoolFlag(false)
	default:
		return entities.RawFlag(*flag)
	}
}
