package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// BatchOptions configures CheckDir.
type BatchOptions struct {
	Jobs           int    // 0 = GOMAXPROCS
	MaxDiagnostics int    // per file
	Ext            string // default ".var"
	Cache          *DiskCache
	Progress       ProgressSink
}

// BatchItem содержит результат проверки одного файла.
type BatchItem struct {
	Path    string        // путь к файлу
	FileID  source.FileID // ID файла в FileSet
	Summary *Summary      // nil, если файл не прочитан
	Bag     *diag.Bag
	Cached  bool
	Elapsed time.Duration
}

// Accepted reports whether the file was read and its declaration accepted.
func (it BatchItem) Accepted() bool {
	return it.Summary != nil && it.Summary.Accepted
}

// ListFiles возвращает отсортированный список всех файлов с расширением ext.
func ListFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет все файлы деклараций в директории параллельно.
// Результаты идут в порядке путей; ошибки чтения файла становятся
// диагностиками IO4001, а не ошибкой всего прогона.
func CheckDir(ctx context.Context, dir string, opts BatchOptions) (*source.FileSet, []BatchItem, error) {
	ext := opts.Ext
	if ext == "" {
		ext = ".var"
	}
	files, err := ListFiles(dir, ext)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагрузка: FileSet не потокобезопасен, поэтому всё грузим заранее.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]BatchItem, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = BatchItem{Path: path, Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			item, err := checkOne(fileSet, path, fileIDs[path], opts)
			if err != nil {
				return err
			}
			results[i] = item

			status := StatusRejected
			if item.Accepted() {
				status = StatusDone
			}
			emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: status, Elapsed: item.Elapsed, Cached: item.Cached})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// checkOne works on an already loaded file; the shared FileSet is only read.
func checkOne(fileSet *source.FileSet, path string, id source.FileID, opts BatchOptions) (BatchItem, error) {
	start := time.Now()
	file := fileSet.Get(id)
	item := BatchItem{Path: path, FileID: id}

	var cached Summary
	hit, err := opts.Cache.Get(file.Hash, &cached)
	if err != nil {
		return item, fmt.Errorf("cache read for %s: %w", path, err)
	}
	if hit {
		item.Summary = &cached
		item.Cached = true
	} else {
		emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
		// отдельный FileSet на файл: смещения те же, общий не трогаем
		local := CheckString(file.Path, file.Text(), opts.MaxDiagnostics)
		item.Summary = Summarize(local)
		if err := opts.Cache.Put(file.Hash, item.Summary); err != nil {
			return item, fmt.Errorf("cache write for %s: %w", path, err)
		}
	}

	item.Bag = item.Summary.Bag(id, opts.MaxDiagnostics)
	item.Elapsed = time.Since(start)
	return item, nil
}
