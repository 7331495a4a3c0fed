package dlist_test

import (
	"strings"
	"sync"

	"github.com/mgnsk/dlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("sync list", func() {
	var l *dlist.SyncList[int]

	BeforeEach(func() {
		l = dlist.NewSync[int]()
	})

	AfterEach(func() {
		Expect(l.Close()).To(Succeed())
		Expect(l.Len()).To(BeZero())
	})

	When("the list is empty", func() {
		Specify("popping returns ErrEmpty", func() {
			_, err := l.PopFront()
			Expect(err).To(MatchError(dlist.ErrEmpty))

			_, err = l.PopBack()
			Expect(err).To(MatchError(dlist.ErrEmpty))
		})
	})

	When("values are pushed at both ends", func() {
		Specify("they are popped from the matching end", func() {
			l.PushBack(1)
			l.PushFront(2)

			Expect(l.String()).To(Equal("1 -> 2"))

			v, err := l.PopBack()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(1))

			v, err = l.PopFront()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(2))
		})
	})

	When("values are pushed concurrently", func() {
		Specify("all of them are stored", func() {
			var (
				wg       sync.WaitGroup
				expected []int
			)

			for i := range 100 {
				expected = append(expected, i)
				wg.Add(1)
				go func() {
					defer wg.Done()
					if i%2 == 0 {
						l.PushBack(i)
					} else {
						l.PushFront(i)
					}
				}()
			}

			wg.Wait()

			Expect(l.Len()).To(Equal(100))
			Expect(l.Values()).To(ConsistOf(expected))
		})
	})

	When("values are read while being pushed and popped", func() {
		Specify("readers observe a consistent list", func() {
			var (
				writers sync.WaitGroup
				readers sync.WaitGroup
				done    = make(chan struct{})
			)

			for i := range 4 {
				writers.Add(1)
				go func() {
					defer writers.Done()

					for j := range 200 {
						if (i+j)%2 == 0 {
							l.PushBack(j)
						} else {
							l.PushFront(j)
						}
						if j%3 == 0 {
							_, _ = l.PopFront()
						}
					}
				}()
			}

			for range 4 {
				readers.Add(1)
				go func() {
					defer GinkgoRecover()
					defer readers.Done()

					for {
						select {
						case <-done:
							return
						default:
						}

						n := l.Len()
						Expect(n).To(BeNumerically(">=", 0))

						values := l.Values()
						Expect(len(values)).To(BeNumerically("<=", 800))

						s := l.String()
						Expect(strings.Count(s, " -> ")).To(BeNumerically("<", 800))
					}
				}()
			}

			writers.Wait()
			close(done)
			readers.Wait()

			// 4 writers push 200 values each and pop 67 of them.
			Expect(l.Len()).To(Equal(532))
			Expect(l.Values()).To(HaveLen(532))
		})
	})

	When("values are popped concurrently", func() {
		Specify("each value is popped once", func() {
			for i := range 100 {
				l.PushBack(i)
			}

			var (
				wg     sync.WaitGroup
				mu     sync.Mutex
				popped []int
			)

			for i := range 8 {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					for {
						var (
							v   int
							err error
						)
						if i%2 == 0 {
							v, err = l.PopFront()
						} else {
							v, err = l.PopBack()
						}
						if err != nil {
							Expect(err).To(MatchError(dlist.ErrEmpty))
							return
						}

						mu.Lock()
						popped = append(popped, v)
						mu.Unlock()
					}
				}()
			}

			wg.Wait()

			Expect(popped).To(HaveLen(100))
			Expect(popped).To(ConsistOf(sequence(100)))
		})
	})
})

var _ = DescribeTable("traversal order",
	func(push func(l *dlist.List[int]), expected []int) {
		l := dlist.New[int]()
		defer l.Close()

		push(l)

		Expect(l.Len()).To(Equal(len(expected)))
		Expect(l.Values()).To(Equal(expected))
	},
	Entry("pushing to the back", func(l *dlist.List[int]) {
		for i := range 10 {
			l.PushBack(i)
		}
	}, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}),
	Entry("pushing to the front", func(l *dlist.List[int]) {
		for i := range 5 {
			l.PushFront(i)
		}
	}, []int{0, 1, 2, 3, 4}),
	Entry("interleaved pushes and pops", func(l *dlist.List[int]) {
		l.PushBack(1)
		l.PushFront(2)
		l.PushBack(3)
		l.PopBack()
		l.PushFront(4)
		l.PopFront()
		l.PushFront(5)
	}, []int{1, 2, 5}),
	Entry("pushes cancelled by pops", func(l *dlist.List[int]) {
		l.PushBack(1)
		l.PushFront(2)
		l.PushBack(9)
		l.PopBack()
		l.PushFront(9)
		l.PopFront()
	}, []int{1, 2}),
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
