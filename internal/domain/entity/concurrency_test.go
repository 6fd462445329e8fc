package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestSort_ConcurrentCallers(t *testing.T) {
	defer goleak.VerifyNone(t)

	inputs := []struct {
		width, height, length, mass float64
		want                        Category
	}{
		{10, 10, 10, 5, CategoryStandard},
		{200, 10, 10, 5, CategorySpecial},
		{10, 10, 10, 25, CategorySpecial},
		{200, 200, 200, 25, CategoryRejected},
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		in := inputs[i%len(inputs)]
		g.Go(func() error {
			got, err := Sort(in.width, in.height, in.length, in.mass)
			if err != nil {
				return err
			}
			if got != in.want {
				return fmt.Errorf("Sort(%v, %v, %v, %v) = %s, want %s",
					in.width, in.height, in.length, in.mass, got, in.want)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
