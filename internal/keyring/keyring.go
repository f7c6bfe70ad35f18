package keyring

import (
	"fmt"
	"time"

	"urchat/internal/crypto"
	"urchat/internal/domain"
)

// MaxRetired caps each retired-key list. The oldest entries are pruned on
// overflow, bounding both the record size and the fallback search.
const MaxRetired = 32

// EnsureNamespace makes sure record has a namespace entry with a current
// keypair, generating one if the namespace is new or its current keypair is
// unset. It reports whether the record was mutated.
func EnsureNamespace(
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
	now time.Time,
) (bool, error) {
	if record.Namespaces == nil {
		record.Namespaces = make(map[domain.NamespaceID]*domain.NamespaceKeys)
	}
	entry, ok := record.Namespaces[namespace]
	if !ok {
		entry = &domain.NamespaceKeys{}
		record.Namespaces[namespace] = entry
	}
	if entry.Current != nil {
		return !ok, nil
	}
	kp, err := crypto.GenerateNamespacedKeypair(now)
	if err != nil {
		return false, err
	}
	entry.Current = &kp
	return true, nil
}

// Current returns the namespace's current keypair.
func Current(
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
) (domain.NamespacedKeypair, error) {
	entry, ok := record.Namespaces[namespace]
	if !ok || entry.Current == nil {
		return domain.NamespacedKeypair{}, fmt.Errorf(
			"namespace %q: %w", namespace, domain.ErrNotFound)
	}
	return *entry.Current, nil
}

// RetireCurrentAndIssueNew appends the namespace's current keypair to its
// retired list (a no-op append when current is unset), then generates and
// installs a new current keypair and returns it. This is the only mutator of
// the retired list.
func RetireCurrentAndIssueNew(
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
	now time.Time,
) (domain.NamespacedKeypair, error) {
	if record.Namespaces == nil {
		record.Namespaces = make(map[domain.NamespaceID]*domain.NamespaceKeys)
	}
	entry, ok := record.Namespaces[namespace]
	if !ok {
		entry = &domain.NamespaceKeys{}
		record.Namespaces[namespace] = entry
	}
	if entry.Current != nil {
		entry.Retired = AppendRetired(entry.Retired, *entry.Current)
	}
	kp, err := crypto.GenerateNamespacedKeypair(now)
	if err != nil {
		return domain.NamespacedKeypair{}, err
	}
	entry.Current = &kp
	return kp, nil
}

// Retired returns a copy of the namespace's retired keypairs, oldest first,
// for fallback decryption attempts. An unknown namespace yields nil.
func Retired(
	record *domain.PrincipalRecord,
	namespace domain.NamespaceID,
) []domain.NamespacedKeypair {
	entry, ok := record.Namespaces[namespace]
	if !ok || len(entry.Retired) == 0 {
		return nil
	}
	out := make([]domain.NamespacedKeypair, len(entry.Retired))
	copy(out, entry.Retired)
	return out
}

// AppendRetired appends kp to a retired list, pruning the oldest entries
// beyond MaxRetired. Shared with the retired-identity chain on the record.
func AppendRetired(
	retired []domain.NamespacedKeypair,
	kp domain.NamespacedKeypair,
) []domain.NamespacedKeypair {
	retired = append(retired, kp)
	if len(retired) > MaxRetired {
		retired = append(retired[:0], retired[len(retired)-MaxRetired:]...)
	}
	return retired
}
