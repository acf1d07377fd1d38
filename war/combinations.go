package war

// combinations counts through every tuple of size digits, each digit in
// [0, max], as a mixed-radix counter with carry into the next digit. Tuples
// come out in counting order, not by sum, so callers filter and buffer.
type combinations struct {
	digits  []int
	max     int
	started bool
	done    bool
}

func newCombinations(size, max int) *combinations {
	return &combinations{digits: make([]int, size), max: max}
}

// next returns the following tuple, or false once the counter has rolled over
// every digit. The returned slice is reused between calls; copy it to keep it.
func (c *combinations) next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if !c.started {
		c.started = true
		return c.digits, true
	}

	for i := range c.digits {
		c.digits[i]++
		if c.digits[i] <= c.max {
			return c.digits, true
		}
		c.digits[i] = 0
	}

	c.done = true
	return nil, false
}
