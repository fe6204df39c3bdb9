package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

// looseText decodes a JSON string or number into its text form. null
// decodes to "".
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = looseText(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = looseText(n.String())
	return nil
}

// parseBody decodes the JSON body whatever the Content-Type header says.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return fmt.Errorf("%w: cannot parse JSON: %v", services.ErrBadRequest, err)
	}
	return nil
}
