package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/mstr"
	"github.com/rawbytedev/mstr/pkg/internpool"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	keys := []string{"azerty", "hello", "world", "random"}
	pool := internpool.New()
	for i := 0; i < 10000; i++ {
		for _, k := range keys {
			b := mstr.Borrowed(k)
			o := b.ToOwned()
			if !b.Equal(o) || b.Hash() != o.Hash() {
				log.Fatal("borrowed/owned mismatch")
			}
			c := o.Clone()
			c.Release()
			_ = pool.Intern(k)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
