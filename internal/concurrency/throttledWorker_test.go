package concurrency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/dingz/internal/concurrency"
)

func Test_ThrottledWorker(t *testing.T) {

	t.Run("should run the job once per index, in order", func(t *testing.T) {
		t.Parallel()
		// arrange
		var processed []int
		worker := concurrency.NewThrottledWorker(func(index int) error {
			processed = append(processed, index)
			return nil
		})

		// act
		worker.Run([]int{3, 1, 0})

		// assert
		assert.Equal(t, []int{3, 1, 0}, processed)
	})

}
