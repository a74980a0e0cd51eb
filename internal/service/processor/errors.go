package processor

const (
	msgInvalidOrderData    = "Invalid order data"
	msgOrderIDNotPositive  = "Order ID must be positive"
	msgFlagMustBeBoolean   = "Flag must be boolean"
	msgInvalidResponseData = "Invalid API response data type"

	msgCannotCreateDir   = "Cannot create output directory"
	msgCannotOpenFile    = "Cannot open file for writing"
	msgFailedWriteHeader = "Failed to write CSV headers"
	msgFailedWriteData   = "Failed to write CSV data"
	msgFailedFlush       = "Failed to flush CSV data to disk"
)
