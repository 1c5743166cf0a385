package stress

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/util"
)

var log = logrus.WithField("component", "stress")

type Options struct {
	// Count is the number of keys inserted.
	Count int

	// Seed of the key source. Zero seeds from the clock.
	Seed int64

	// MaxKey switches to uniform keys in [0, MaxKey). Zero uses the classic
	// (2+T)*(rand%100) formula, where T counts down from Count-1 to 0.
	MaxKey int64

	// DeleteRatio is the probability of deleting a previously inserted key
	// after each insert.
	DeleteRatio float64

	// ValidateEvery runs Validate after every n inserts. Zero only validates
	// once at the end.
	ValidateEvery int
}

func (o Options) Validate() error {
	if o.Count < 0 {
		return errors.Errorf("count must not be negative, given %d", o.Count)
	}
	if o.MaxKey < 0 {
		return errors.Errorf("max key must not be negative, given %d", o.MaxKey)
	}
	if o.DeleteRatio < 0 || o.DeleteRatio >= 1 {
		return errors.Errorf("delete ratio must be in [0, 1), given %v", o.DeleteRatio)
	}
	if o.ValidateEvery < 0 {
		return errors.Errorf("validate interval must not be negative, given %d", o.ValidateEvery)
	}
	return nil
}

type Report struct {
	Seed     int64         `json:"seed" yaml:"seed"`
	Inserted int           `json:"inserted" yaml:"inserted"`
	Deleted  int           `json:"deleted" yaml:"deleted"`
	NotFound int           `json:"notFound" yaml:"notFound"`
	Checks   int           `json:"checks" yaml:"checks"`
	Duration time.Duration `json:"duration" yaml:"duration"`

	Size        int `json:"size" yaml:"size"`
	Height      int `json:"height" yaml:"height"`
	BlackHeight int `json:"blackHeight" yaml:"blackHeight"`
}

// ProgressFunc receives the number of inserts done so far.
type ProgressFunc func(done int)

// Run inserts opts.Count pseudo-random keys into tree, interleaving deletes
// when a delete ratio is set. It stops at the first failed validation or when
// ctx is done, returning the partial report together with the error.
func Run(ctx context.Context, tree *rbtree.Tree[int64], opts Options, progress ProgressFunc) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rnd := rand.New(rand.NewSource(seed))
	report := &Report{Seed: seed}
	profile := util.StartTimeProfile("stress run")

	defer func() {
		report.Duration = profile.StopAndLog(log)
		report.Size = tree.Len()
		report.Height = tree.Height()
		report.BlackHeight = tree.BlackHeight()
	}()

	// inserted keys, used to pick delete targets
	var keys []int64
	if opts.DeleteRatio > 0 {
		keys = make([]int64, 0, opts.Count)
	}

	for i := 0; i < opts.Count; i++ {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		key := nextKey(rnd, opts, opts.Count-1-i)
		tree.Insert(key)
		report.Inserted++

		if opts.DeleteRatio > 0 {
			keys = append(keys, key)

			if rnd.Float64() < opts.DeleteRatio {
				idx := rnd.Intn(len(keys))
				target := keys[idx]
				keys[idx] = keys[len(keys)-1]
				keys = keys[:len(keys)-1]

				if err := tree.Delete(target); err != nil {
					if !errors.Is(err, rbtree.ErrNotFound) {
						return report, err
					}
					report.NotFound++
				} else {
					report.Deleted++
				}
			}
		}

		if opts.ValidateEvery > 0 && report.Inserted%opts.ValidateEvery == 0 {
			report.Checks++
			if err := tree.Validate(); err != nil {
				return report, errors.Wrapf(err, "validation failed after %d inserts", report.Inserted)
			}
		}

		if progress != nil {
			progress(report.Inserted)
		}
	}

	report.Checks++
	if err := tree.Validate(); err != nil {
		return report, errors.Wrap(err, "final validation failed")
	}

	log.Debugf("stress run finished: %d inserted, %d deleted", report.Inserted, report.Deleted)
	return report, nil
}

func nextKey(rnd *rand.Rand, opts Options, t int) int64 {
	if opts.MaxKey > 0 {
		return rnd.Int63n(opts.MaxKey)
	}

	return int64(2+t) * rnd.Int63n(100)
}
