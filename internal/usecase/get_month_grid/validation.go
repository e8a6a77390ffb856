package get_month_grid

import "fmt"

const (
	minYear   = 1
	maxYear   = 9999
	maxOffset = 12 * 100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Year != 0 && (req.Year < minYear || req.Year > maxYear) {
		return fmt.Errorf("%w: year must be within %d..%d", ErrInvalidInput, minYear, maxYear)
	}

	if req.Offset < -maxOffset || req.Offset > maxOffset {
		return fmt.Errorf("%w: offset must be within ±%d months", ErrInvalidInput, maxOffset)
	}

	return nil
}

// validateNormalized проверяет год после нормализации месяца и сдвига
func validateNormalized(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: resulting year %d is out of range", ErrInvalidInput, year)
	}
	return nil
}
