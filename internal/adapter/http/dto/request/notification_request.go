package request

// PayU delivers IPN notifications as form-encoded POSTs; gin binds them
// via the form tags.

// AuthorizationNotificationRequest is the payment-authorized IPN. REFNOEXT
// is the external reference the charge request carried.
type AuthorizationNotificationRequest struct {
	RefNoExt string `form:"REFNOEXT" binding:"required"`
	RefNo    string `form:"REFNO"`
	OrderNo  string `form:"ORDERNO"`
	SaleDate string `form:"SALEDATE"`
}

// TokenNotificationRequest is the token-created IPN: the issued token plus
// the external reference of the transaction it was created for.
type TokenNotificationRequest struct {
	RefNoExt string `form:"REFNOEXT" binding:"required"`
	Token    string `form:"IPN_CC_TOKEN" binding:"required"`
	CCMask   string `form:"IPN_CC_MASK"`
	CCExpDat string `form:"IPN_CC_EXP_DATE"`
}
