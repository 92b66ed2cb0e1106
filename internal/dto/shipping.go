package dto

type ShippingLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ShippingLoginResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	CompanyID int64  `json:"company_id"`
	Token     string `json:"token"`
}

type ShippingOrderList struct {
	Data []ShippingOrder `json:"data"`
	Meta ShippingMeta    `json:"meta"`
}

type ShippingOrder struct {
	ID             int64              `json:"id"`
	ChannelOrderID string             `json:"channel_order_id"`
	CustomerName   string             `json:"customer_name"`
	Status         string             `json:"status"`
	CreatedAt      string             `json:"created_at"`
	Shipments      []ShippingShipment `json:"shipments"`
}

type ShippingShipment struct {
	ID      int64  `json:"id"`
	AWB     string `json:"awb"`
	Courier string `json:"courier"`
	Status  string `json:"status"`
}

// HasAWB reports whether any shipment of the order has a tracking code.
func (o ShippingOrder) HasAWB() bool {
	for _, s := range o.Shipments {
		if s.AWB != "" {
			return true
		}
	}

	return false
}

type ShippingMeta struct {
	Pagination ShippingPagination `json:"pagination"`
}

type ShippingPagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type AdhocOrderRequest struct {
	OrderID             string           `json:"order_id"`
	OrderDate           string           `json:"order_date"`
	PickupLocation      string           `json:"pickup_location"`
	BillingCustomerName string           `json:"billing_customer_name"`
	BillingLastName     string           `json:"billing_last_name"`
	BillingAddress      string           `json:"billing_address"`
	BillingCity         string           `json:"billing_city"`
	BillingPincode      string           `json:"billing_pincode"`
	BillingState        string           `json:"billing_state"`
	BillingCountry      string           `json:"billing_country"`
	BillingEmail        string           `json:"billing_email"`
	BillingPhone        string           `json:"billing_phone"`
	ShippingIsBilling   bool             `json:"shipping_is_billing"`
	OrderItems          []AdhocOrderItem `json:"order_items"`
	PaymentMethod       string           `json:"payment_method"`
	SubTotal            float64          `json:"sub_total"`
	Length              float64          `json:"length"`
	Breadth             float64          `json:"breadth"`
	Height              float64          `json:"height"`
	Weight              float64          `json:"weight"`
}

type AdhocOrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

type AdhocOrderResponse struct {
	OrderID     int64  `json:"order_id"`
	ShipmentID  int64  `json:"shipment_id"`
	Status      string `json:"status"`
	StatusCode  int    `json:"status_code"`
	AWBCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}
