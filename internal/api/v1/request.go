package v1

type InitializePaymentRequest struct {
	TrackID  string `json:"track_id" validate:"omitempty,max=255"`
	Action   string `json:"action" validate:"required,action"`
	Amount   string `json:"amount" validate:"required,amount"`
	Currency int    `json:"currency" validate:"omitempty,min=1,max=999"`
	Language string `json:"language" validate:"omitempty,language"`
	UDF1     string `json:"udf1" validate:"max=255"`
	UDF2     string `json:"udf2" validate:"max=255"`
	UDF3     string `json:"udf3" validate:"max=255"`
	UDF4     string `json:"udf4" validate:"max=255"`
	UDF5     string `json:"udf5" validate:"max=255"`
}
