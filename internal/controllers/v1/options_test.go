package v1_test

import (
	"net/http"

	"github.com/envelope-zero/tracker/test"
)

func (suite *TestSuiteStandard) TestOptions() {
	e := suite.createTestExpense(expense(1, "A", "2024-03-01"))

	tests := []struct {
		path     string
		expected string
	}{
		{"/expenses", "OPTIONS, GET, POST"},
		{"/expenses/" + e.ID, "OPTIONS, GET, PUT, PATCH, DELETE"},
		{"/income", "OPTIONS, GET, PUT"},
		{"/report/monthly", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			r := suite.request(http.MethodOptions, tt.path, nil)
			test.AssertHTTPStatus(suite.T(), r, http.StatusNoContent)
			suite.Assert().Equal(tt.expected, r.Header().Get("allow"))
		})
	}
}
