package git_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/git"
	"stackit.dev/gitkit/internal/object"
)

type cannedResult struct {
	out string
	err error
}

// fakeExecutor answers git invocations from a table keyed by the joined args.
type fakeExecutor struct {
	results map[string]cannedResult
	inputs  map[string]string
	calls   []string
	cfg     git.Config
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		results: map[string]cannedResult{},
		inputs:  map[string]string{},
	}
}

func (f *fakeExecutor) on(out string, err error, args ...string) {
	f.results[strings.Join(args, " ")] = cannedResult{out: out, err: err}
}

func (f *fakeExecutor) RunRaw(_ context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	res, ok := f.results[key]
	if !ok {
		return "", gkerrors.NewExternalToolError("git", args, "", "unexpected call", nil)
	}
	return res.out, res.err
}

func (f *fakeExecutor) Run(ctx context.Context, args ...string) (string, error) {
	out, err := f.RunRaw(ctx, args...)
	return strings.TrimSpace(out), err
}

func (f *fakeExecutor) RunWithInput(ctx context.Context, input string, args ...string) (string, error) {
	f.inputs[strings.Join(args, " ")] = input
	return f.Run(ctx, args...)
}

func (f *fakeExecutor) Current() git.Config { return f.cfg }

func (f *fakeExecutor) Push(frame git.Config) func() {
	prev := f.cfg
	if frame.WorkDir != "" {
		f.cfg.WorkDir = frame.WorkDir
	}
	return func() { f.cfg = prev }
}

const (
	blobID = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
	treeID = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
	mainID = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
	devID  = "cafebabecafebabecafebabecafebabecafebabe"
)

func exitError(code int, stderr string) *gkerrors.ExternalToolError {
	err := gkerrors.NewExternalToolError("git", nil, "", stderr, nil)
	err.ExitCode = code
	return err
}

func TestRepositoryDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("LsTree decodes rows", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("100644 blob "+blobID+"\tREADME.md\x00040000 tree "+treeID+"\tdocs\x00", nil, "ls-tree", "-z", "HEAD")
		entries, err := git.NewRepository(fake).LsTree(ctx, "HEAD")
		require.NoError(t, err)
		require.Equal(t, []object.TreeEntry{
			{Mode: "100644", Kind: object.KindBlob, ID: blobID, Name: "README.md"},
			{Mode: "040000", Kind: object.KindTree, ID: treeID, Name: "docs"},
		}, entries)
	})

	t.Run("LsTree keeps names byte for byte", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("100644 blob "+blobID+"\tcaf\u00e9.txt\x00100644 blob "+blobID+"\tline\nbreak\x00", nil, "ls-tree", "-z", "HEAD")
		entries, err := git.NewRepository(fake).LsTree(ctx, "HEAD")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, "caf\u00e9.txt", entries[0].Name)
		require.Equal(t, "line\nbreak", entries[1].Name)
	})

	t.Run("LsTree rejects malformed rows", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("100644 blob XYZ\tREADME.md\x00", nil, "ls-tree", "-z", "HEAD")
		_, err := git.NewRepository(fake).LsTree(ctx, "HEAD")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
	})

	t.Run("LsTree maps bad object to not found", func(t *testing.T) {
		fake := newFakeExecutor()
		toolErr := exitError(128, "fatal: Not a valid object name nope\n")
		toolErr.Message = "fatal: Not a valid object name nope"
		fake.on("", toolErr, "ls-tree", "-z", "nope")
		_, err := git.NewRepository(fake).LsTree(ctx, "nope")
		require.ErrorIs(t, err, gkerrors.ErrNotFound)
	})

	t.Run("AddToTree feeds merged rows to mktree", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("100644 blob "+blobID+"\ta\x00100644 blob "+blobID+"\tb\x00", nil, "ls-tree", "-z", "HEAD")
		fake.on(treeID+"\n", nil, "mktree", "-z")

		id, err := git.NewRepository(fake).AddToTree(ctx, "HEAD", []object.TreeEntry{
			{Kind: object.KindBlob, ID: mainID, Name: "b"},
			{Kind: object.KindBlob, ID: devID, Name: "c"},
		})
		require.NoError(t, err)
		require.Equal(t, treeID, id)
		require.Equal(t,
			"100644 blob "+blobID+"\ta\x00"+
				"100644 blob "+mainID+"\tb\x00"+
				"100644 blob "+devID+"\tc\x00",
			fake.inputs["mktree -z"])
	})

	t.Run("AddToTree with empty treeish skips ls-tree", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(treeID, nil, "mktree", "-z")
		_, err := git.NewRepository(fake).AddToTree(ctx, "", []object.TreeEntry{
			{Kind: object.KindTree, ID: treeID, Name: "sub"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"mktree -z"}, fake.calls)
		require.Equal(t, "040000 tree "+treeID+"\tsub\x00", fake.inputs["mktree -z"])
	})

	t.Run("MkTree rejects bad entries before running git", func(t *testing.T) {
		fake := newFakeExecutor()
		_, err := git.NewRepository(fake).MkTree(ctx, []object.TreeEntry{
			{Kind: object.KindBlob, ID: strings.ToUpper(blobID), Name: "x"},
		})
		require.ErrorIs(t, err, gkerrors.ErrValidation)
		require.Empty(t, fake.calls)
	})

	t.Run("ShowRefs reverses listing", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(mainID+" refs/heads/main\n"+devID+" refs/heads/dev\n", nil, "show-ref")
		refs, err := git.NewRepository(fake).ShowRefs(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"refs/heads/main": mainID,
			"refs/heads/dev":  devID,
		}, map[string]string(refs))
	})

	t.Run("ShowRefs treats silent exit 1 as empty", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("", exitError(1, ""), "show-ref", "refs/nothing")
		refs, err := git.NewRepository(fake).ShowRefs(ctx, "refs/nothing")
		require.NoError(t, err)
		require.Empty(t, refs)
	})

	t.Run("Heads strips prefix", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(mainID+" refs/heads/main\n"+devID+" refs/heads/feature/x\n", nil,
			"for-each-ref", "--format=%(objectname) %(refname)", "refs/heads/")
		heads, err := git.NewRepository(fake).Heads(ctx)
		require.NoError(t, err)
		require.Equal(t, mainID, heads["main"])
		require.Equal(t, devID, heads["feature/x"])
	})

	t.Run("RevParse silent failure is not found", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("", exitError(1, ""), "rev-parse", "--verify", "--quiet", "nope")
		_, err := git.NewRepository(fake).RevParse(ctx, "nope")
		require.ErrorIs(t, err, gkerrors.ErrNotFound)

		var nf *gkerrors.NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "nope", nf.Name)
	})

	t.Run("RevParse rejects abbreviated output", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("deadbee\n", nil, "rev-parse", "--verify", "--quiet", "HEAD")
		_, err := git.NewRepository(fake).RevParse(ctx, "HEAD")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
	})

	t.Run("CurrentBranch on detached head is not found", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("* (HEAD detached at deadbee)\n  main\n", nil, "branch", "--list", "--no-color")
		_, err := git.NewRepository(fake).CurrentBranch(ctx)
		require.ErrorIs(t, err, gkerrors.ErrNotFound)
	})

	t.Run("BranchNames keeps order", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("  dev\n* main\n+ wt\n", nil, "branch", "--list", "--no-color")
		names, err := git.NewRepository(fake).BranchNames(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"dev", "main", "wt"}, names)
	})

	t.Run("CommitTree reads first line", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("tree "+treeID+"\nparent "+mainID+"\n\nmsg\n", nil, "cat-file", "commit", devID)
		id, err := git.NewRepository(fake).CommitTree(ctx, devID)
		require.NoError(t, err)
		require.Equal(t, treeID, id)
	})

	t.Run("HashObject rejects invalid kind", func(t *testing.T) {
		fake := newFakeExecutor()
		_, err := git.NewRepository(fake).HashObject(ctx, object.ObjectKind("bogus"), "x", false)
		require.ErrorIs(t, err, gkerrors.ErrValidation)
		require.Empty(t, fake.calls)
	})

	t.Run("UpdateRef validates id", func(t *testing.T) {
		fake := newFakeExecutor()
		err := git.NewRepository(fake).UpdateRef(ctx, "refs/heads/x", "HEAD")
		require.ErrorIs(t, err, gkerrors.ErrValidation)
		require.Empty(t, fake.calls)
	})

	t.Run("As scopes the executor", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.cfg.WorkDir = "/outer"
		repo := git.NewRepository(fake)
		err := repo.As("/inner", func(r *git.Repository) error {
			require.Equal(t, "/inner", r.Executor().Current().WorkDir)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, "/outer", fake.Current().WorkDir)
	})
}
