package computation

import (
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"orderprocessing/internal/entities"
)

const (
	fieldStatus = "status"
	fieldData   = "data"
)

func toRequest(orderID entities.OrderID) *wrapperspb.StringValue {
	return wrapperspb.String(orderID.String())
}

// toDomain: отсутствующее поле data и null дают nil, числа приходят как float64.
func toDomain(resp *structpb.Struct) *entities.APIResponse {
	if resp == nil {
		return &entities.APIResponse{}
	}

	fields := resp.GetFields()
	response := &entities.APIResponse{
		Status: fields[fieldStatus].GetStringValue(),
	}
	if data, ok := fields[fieldData]; ok && data != nil {
		response.Data = data.AsInterface()
	}
	return response
}
