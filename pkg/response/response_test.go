package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessOmitsErrorFields(t *testing.T) {
	body, err := json.Marshal(Success(http.StatusOK, map[string]int{"n": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","status_code":200,"data":{"n":1}}`, string(body))
}

func TestValidationFailedCarriesFields(t *testing.T) {
	resp := ValidationFailed(http.StatusUnprocessableEntity, "invalid input", map[string]string{"crsp": "Enter CRSP"})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","status_code":422,"error":"invalid input","fields":{"crsp":"Enter CRSP"}}`, string(body))
}
