package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/docker/go-units"
	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/br/pkg/storage"
	"golang.org/x/sync/errgroup"

	"tpchtable/config"
	"tpchtable/tablefunc"
	"tpchtable/util"
	"tpchtable/writer"
)

// GenerateTables writes the configured tables, splitting each into
// common.num_parts files generated in parallel.
func GenerateTables(cfg *config.Config, threads int) error {
	if cfg.Common.Prefix == "" {
		cfg.Common.Prefix = uuid.NewString()[:8]
		log.Printf("Using generated prefix %s", cfg.Common.Prefix)
	}

	funcs, err := resolveTableFuncs(cfg)
	if err != nil {
		return errors.Trace(err)
	}

	w, err := writer.New(cfg)
	if err != nil {
		return errors.Trace(err)
	}

	sf := cfg.Common.ScaleFactor
	numParts := int64(cfg.Common.NumParts)
	progress := util.NewTableProgress(len(funcs)*int(numParts), "writing")
	w.SetProgress(progress)

	start := time.Now()

	var eg errgroup.Group
	eg.SetLimit(threads)
	for _, f := range funcs {
		for part := int64(1); part <= numParts; part++ {
			eg.Go(func() error {
				t, err := f.Call(sf, part, numParts)
				if err != nil {
					return errors.Annotatef(err, "generate %s part %d", f.Name, part)
				}
				defer t.Release()

				name := f.Name
				if numParts > 1 {
					name = fmt.Sprintf("%s.%d", f.Name, part)
				}
				for _, rec := range t.Scan() {
					if err := w.WriteTable(name, rec); err != nil {
						return errors.Trace(err)
					}
				}
				progress.PartDone()
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return errors.Trace(err)
	}

	parts, bytes := progress.Snapshot()
	log.Printf("Wrote %d files, %s in %s",
		parts, units.BytesSize(float64(bytes)), time.Since(start).Round(time.Millisecond))
	return nil
}

func resolveTableFuncs(cfg *config.Config) ([]*tablefunc.TableFunc, error) {
	names := cfg.TableNames()
	if len(names) == 0 {
		return tablefunc.All, nil
	}
	funcs := make([]*tablefunc.TableFunc, 0, len(names))
	for _, name := range names {
		f, ok := tablefunc.Lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown table: %q", name)
		}
		funcs = append(funcs, f)
	}
	return funcs, nil
}

func DeleteAllFiles(cfg *config.Config) error {
	var fileNames []string
	store, err := config.GetStore(cfg)
	if err != nil {
		return errors.Trace(err)
	}

	//nolint: errcheck
	defer store.Close()

	store.WalkDir(context.Background(), &storage.WalkOption{SkipSubDir: true}, func(path string, size int64) error {
		fileNames = append(fileNames, path)
		return nil
	})

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for _, fileName := range fileNames {
		f := fileName
		eg.Go(func() error {
			return store.DeleteFile(context.Background(), f)
		})
	}

	return eg.Wait()
}

func ShowFiles(cfg *config.Config) error {
	store, err := config.GetStore(cfg)
	if err != nil {
		return errors.Trace(err)
	}

	//nolint: errcheck
	defer store.Close()

	store.WalkDir(context.Background(), &storage.WalkOption{SkipSubDir: true}, func(path string, size int64) error {
		log.Printf("Name: %s, Size: %d, Size (MiB): %f", path, size, float64(size)/1024/1024)
		return nil
	})

	return nil
}
